package handlers

import (
	"log"
	"net/http"

	response "sarb_ai/internal/adapter/http/dto/response"
	"sarb_ai/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for proactive host
// notifications.

type NotificationHandler struct {
	usecase usecase.IHostNotificationUseCase
}

func NewNotificationHandler(uc usecase.IHostNotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// HostNotifications answers GET /api/ai/host-notifications/:host_id. A host
// with no cars gets an empty result, not an error.
func (h *NotificationHandler) HostNotifications(c *gin.Context) {
	hostID, ok := paramInt(c, "host_id")
	if !ok {
		return
	}

	notifications, err := h.usecase.Notify(c.Request.Context(), hostID)
	if err != nil {
		log.Printf("[notification][handler] notify failed host_id=%d err=%v", hostID, err)
		appErr := internalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHostNotifications(notifications))
}
