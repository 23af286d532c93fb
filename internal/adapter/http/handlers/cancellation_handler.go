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

// CancellationHandler handles HTTP requests for booking cancellation
// eligibility.

type CancellationHandler struct {
	usecase usecase.ICancellationUseCase
}

func NewCancellationHandler(uc usecase.ICancellationUseCase) *CancellationHandler {
	return &CancellationHandler{usecase: uc}
}

// CanCancel answers GET /api/ai/can-cancel/:booking_id.
func (h *CancellationHandler) CanCancel(c *gin.Context) {
	bookingID, ok := paramInt(c, "booking_id")
	if !ok {
		return
	}

	decision, err := h.usecase.CanCancel(c.Request.Context(), bookingID)
	if err != nil {
		log.Printf("[cancellation][handler] check failed booking_id=%d err=%v", bookingID, err)
		appErr := mapCancellationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCancellationDecision(decision))
}

func mapCancellationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
