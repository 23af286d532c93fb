package routes

import (
	"sarb_ai/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAI = "/ai"

func addAIRoutes(
	rg *gin.RouterGroup,
	demandHandler *handlers.DemandHandler,
	pricingHandler *handlers.PricingHandler,
	cancellationHandler *handlers.CancellationHandler,
	recommendationHandler *handlers.RecommendationHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	ai := rg.Group(PathAI)
	{
		ai.GET("/forecast-demand/:area_id", demandHandler.ForecastDemand)
		ai.GET("/hotspot-prediction", demandHandler.PredictHotspots)
		ai.GET("/map-insights/:area_id", demandHandler.MapInsights)

		ai.GET("/recommend-price/:car_id", pricingHandler.RecommendPrice)
		ai.GET("/recommend-initial-price", pricingHandler.RecommendInitialPrice)

		ai.GET("/can-cancel/:booking_id", cancellationHandler.CanCancel)

		ai.GET("/recommend-cars/:user_id", recommendationHandler.RecommendCars)
		ai.GET("/recommend-areas/:user_id", recommendationHandler.RecommendAreas)

		ai.GET("/host-notifications/:host_id", notificationHandler.HostNotifications)
	}
}
