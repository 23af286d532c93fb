package handlers

import (
	"log"
	"net/http"
	"sort"

	response "sarb_ai/internal/adapter/http/dto/response"
	"sarb_ai/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// DataHandler serves the raw snapshot collections. These endpoints are
// pass-throughs: the snapshot source already absorbed upstream failures, so
// the worst case is an empty list.

type DataHandler struct {
	source interfaces.ISnapshotSource
}

func NewDataHandler(source interfaces.ISnapshotSource) *DataHandler {
	return &DataHandler{source: source}
}

func (h *DataHandler) Cars(c *gin.Context) {
	snap, err := h.source.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, "cars", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCars(snap.Cars))
}

func (h *DataHandler) Users(c *gin.Context) {
	snap, err := h.source.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, "users", err)
		return
	}
	c.JSON(http.StatusOK, snap.Users)
}

func (h *DataHandler) Bookings(c *gin.Context) {
	snap, err := h.source.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, "bookings", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(snap.Bookings))
}

func (h *DataHandler) MarketPrices(c *gin.Context) {
	snap, err := h.source.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, "market prices", err)
		return
	}
	prices := make([]response.MarketPriceResponse, 0, len(snap.MarketPrices))
	for carType, avg := range snap.MarketPrices {
		prices = append(prices, response.MarketPriceResponse{CarType: carType, AveragePrice: avg})
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].CarType < prices[j].CarType })
	c.JSON(http.StatusOK, prices)
}

func (h *DataHandler) Events(c *gin.Context) {
	snap, err := h.source.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, "events", err)
		return
	}
	c.JSON(http.StatusOK, snap.Events)
}

func (h *DataHandler) MapView(c *gin.Context) {
	snap, err := h.source.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, "map view", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAreas(snap.Areas))
}

func (h *DataHandler) fail(c *gin.Context, what string, err error) {
	log.Printf("[data][handler] %s failed err=%v", what, err)
	appErr := internalError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
