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

// RecommendationHandler handles HTTP requests for per-user car and area
// recommendations.

type RecommendationHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewRecommendationHandler(uc usecase.IRecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{usecase: uc}
}

// RecommendCars answers GET /api/ai/recommend-cars/:user_id. Optional
// preferred_type and max_price query parameters override the defaults.
func (h *RecommendationHandler) RecommendCars(c *gin.Context) {
	userID, ok := paramInt(c, "user_id")
	if !ok {
		return
	}

	var payload request.CarRecommendationRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameters", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	prefs := usecase.CarPreferences{PreferredType: payload.PreferredType, MaxPrice: payload.MaxPrice}
	cars, err := h.usecase.RecommendCars(c.Request.Context(), userID, prefs)
	if err != nil {
		log.Printf("[recommendation][handler] cars failed user_id=%d err=%v", userID, err)
		appErr := mapRecommendationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCarRecommendations(userID, cars))
}

// RecommendAreas answers GET /api/ai/recommend-areas/:user_id.
func (h *RecommendationHandler) RecommendAreas(c *gin.Context) {
	userID, ok := paramInt(c, "user_id")
	if !ok {
		return
	}

	areas, err := h.usecase.RecommendAreas(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[recommendation][handler] areas failed user_id=%d err=%v", userID, err)
		appErr := mapRecommendationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAreaRecommendations(userID, areas))
}

func mapRecommendationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
