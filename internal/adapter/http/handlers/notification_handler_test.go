package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sarb_ai/internal/adapter/http/handlers/mocks"
	"sarb_ai/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_HostNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHostNotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().Notify(gomock.Any(), 5).Return(usecase.HostNotifications{
			HostID: 5,
			DemandNotifications: []usecase.DemandNotification{
				{ID: "n-1", Date: "2025-07-01", Message: "m", UtilizationRate: 0.5, PotentialRevenueIncrease: "30% potential increase"},
			},
			SeasonalNotifications: []usecase.SeasonalNotification{},
			TotalCars:             2,
			Timestamp:             time.Now(),
		}, nil)

		r := gin.New()
		r.GET("/api/ai/host-notifications/:host_id", h.HostNotifications)

		req := httptest.NewRequest(http.MethodGet, "/api/ai/host-notifications/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			HostID              int              `json:"host_id"`
			DemandNotifications []map[string]any `json:"demand_notifications"`
			TotalCars           int              `json:"total_cars"`
			Message             *string          `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.HostID != 5 || body.TotalCars != 2 {
			t.Fatalf("unexpected body: %+v", body)
		}
		if len(body.DemandNotifications) != 1 {
			t.Fatalf("expected 1 demand notification, got %d", len(body.DemandNotifications))
		}
		if body.Message != nil {
			t.Fatalf("expected message to be omitted, got %q", *body.Message)
		}
	})

	t.Run("host without cars keeps the informative message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHostNotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().Notify(gomock.Any(), 8).Return(usecase.HostNotifications{
			HostID:                8,
			DemandNotifications:   []usecase.DemandNotification{},
			SeasonalNotifications: []usecase.SeasonalNotification{},
			Message:               "No cars found for this host",
			Timestamp:             time.Now(),
		}, nil)

		r := gin.New()
		r.GET("/api/ai/host-notifications/:host_id", h.HostNotifications)

		req := httptest.NewRequest(http.MethodGet, "/api/ai/host-notifications/8", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["message"] != "No cars found for this host" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
		if body["demand_notifications"] == nil {
			t.Fatal("expected demand_notifications to be [] not null")
		}
	})

	t.Run("usecase failure is 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHostNotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().Notify(gomock.Any(), 5).Return(usecase.HostNotifications{}, errors.New("boom"))

		r := gin.New()
		r.GET("/api/ai/host-notifications/:host_id", h.HostNotifications)

		req := httptest.NewRequest(http.MethodGet, "/api/ai/host-notifications/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("invalid host id is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewNotificationHandler(mocks.NewMockIHostNotificationUseCase(ctrl))

		r := gin.New()
		r.GET("/api/ai/host-notifications/:host_id", h.HostNotifications)

		req := httptest.NewRequest(http.MethodGet, "/api/ai/host-notifications/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
