package routes

import (
	"sarb_ai/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addDataRoutes(rg *gin.RouterGroup, dataHandler *handlers.DataHandler) {
	rg.GET("/cars", dataHandler.Cars)
	rg.GET("/users", dataHandler.Users)
	rg.GET("/bookings", dataHandler.Bookings)
	rg.GET("/market/average-prices", dataHandler.MarketPrices)
	rg.GET("/events", dataHandler.Events)
	rg.GET("/mapview", dataHandler.MapView)
}
