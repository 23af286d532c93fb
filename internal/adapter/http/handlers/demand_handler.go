package handlers

import (
	"errors"
	"log"
	"net/http"

	response "sarb_ai/internal/adapter/http/dto/response"
	"sarb_ai/internal/usecase"
	"sarb_ai/pkg"

	"github.com/gin-gonic/gin"
)

// DemandHandler handles HTTP requests for demand forecasting, hotspot
// prediction and per-area map insights.

type DemandHandler struct {
	usecase usecase.IDemandUseCase
}

func NewDemandHandler(uc usecase.IDemandUseCase) *DemandHandler {
	return &DemandHandler{usecase: uc}
}

// ForecastDemand answers GET /api/ai/forecast-demand/:area_id.
func (h *DemandHandler) ForecastDemand(c *gin.Context) {
	areaID, ok := paramInt(c, "area_id")
	if !ok {
		return
	}

	forecast, err := h.usecase.ForecastDemand(c.Request.Context(), areaID)
	if err != nil {
		log.Printf("[demand][handler] forecast failed area_id=%d err=%v", areaID, err)
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemandForecast(forecast))
}

// PredictHotspots answers GET /api/ai/hotspot-prediction.
func (h *DemandHandler) PredictHotspots(c *gin.Context) {
	prediction, err := h.usecase.PredictHotspots(c.Request.Context())
	if err != nil {
		log.Printf("[demand][handler] hotspot prediction failed err=%v", err)
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHotspotPrediction(prediction))
}

// MapInsights answers GET /api/ai/map-insights/:area_id.
func (h *DemandHandler) MapInsights(c *gin.Context) {
	areaID, ok := paramInt(c, "area_id")
	if !ok {
		return
	}

	insights, err := h.usecase.MapInsights(c.Request.Context(), areaID)
	if err != nil {
		log.Printf("[demand][handler] map insights failed area_id=%d err=%v", areaID, err)
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMapInsights(insights))
}

func mapDemandError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAreaNotFound):
		return pkg.NewDomainErrorSimple("AREA_NOT_FOUND", "Area not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
