package handlers

import (
	"errors"
	"log"
	"net/http"

	request "sarb_ai/internal/adapter/http/dto/request"
	response "sarb_ai/internal/adapter/http/dto/response"
	"sarb_ai/internal/usecase"
	"sarb_ai/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInitialPriceQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "car_type and location query parameters are required", http.StatusBadRequest)

// PricingHandler handles HTTP requests for price recommendations.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// RecommendPrice answers GET /api/ai/recommend-price/:car_id.
func (h *PricingHandler) RecommendPrice(c *gin.Context) {
	carID, ok := paramInt(c, "car_id")
	if !ok {
		return
	}

	recommendation, err := h.usecase.RecommendPrice(c.Request.Context(), carID)
	if err != nil {
		log.Printf("[pricing][handler] recommend failed car_id=%d err=%v", carID, err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceRecommendation(recommendation))
}

// RecommendInitialPrice answers GET /api/ai/recommend-initial-price.
func (h *PricingHandler) RecommendInitialPrice(c *gin.Context) {
	var payload request.InitialPriceRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidInitialPriceQuery.HTTPStatus, errInvalidInitialPriceQuery.ToHTTPError())
		return
	}

	recommendation, err := h.usecase.RecommendInitialPrice(c.Request.Context(), payload.ResolveCarType(), payload.ResolveLocation())
	if err != nil {
		log.Printf("[pricing][handler] initial price failed car_type=%s location=%s err=%v", payload.CarType, payload.Location, err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInitialPriceRecommendation(recommendation))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCarNotFound):
		return pkg.NewDomainErrorSimple("CAR_NOT_FOUND", "Car not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCarType), errors.Is(err, usecase.ErrInvalidLocation):
		return errInvalidInitialPriceQuery
	default:
		return internalError(err)
	}
}
