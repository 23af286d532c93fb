package response

import (
	"time"

	"sarb_ai/internal/usecase"
)

type DemandNotificationResponse struct {
	ID                       string  `json:"id"`
	Date                     string  `json:"date"`
	Message                  string  `json:"message"`
	UtilizationRate          float64 `json:"utilization_rate"`
	PotentialRevenueIncrease string  `json:"potential_revenue_increase"`
}

type SeasonalNotificationResponse struct {
	ID             string `json:"id"`
	Period         string `json:"period"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

type HostNotificationsResponse struct {
	HostID                int                            `json:"host_id"`
	DemandNotifications   []DemandNotificationResponse   `json:"demand_notifications"`
	SeasonalNotifications []SeasonalNotificationResponse `json:"seasonal_notifications"`
	TotalCars             int                            `json:"total_cars"`
	Message               string                         `json:"message,omitempty"`
	Timestamp             time.Time                      `json:"timestamp"`
}

func FromHostNotifications(n usecase.HostNotifications) HostNotificationsResponse {
	demand := make([]DemandNotificationResponse, 0, len(n.DemandNotifications))
	for _, d := range n.DemandNotifications {
		demand = append(demand, DemandNotificationResponse{
			ID:                       d.ID,
			Date:                     d.Date,
			Message:                  d.Message,
			UtilizationRate:          d.UtilizationRate,
			PotentialRevenueIncrease: d.PotentialRevenueIncrease,
		})
	}
	seasonal := make([]SeasonalNotificationResponse, 0, len(n.SeasonalNotifications))
	for _, s := range n.SeasonalNotifications {
		seasonal = append(seasonal, SeasonalNotificationResponse{
			ID:             s.ID,
			Period:         s.Period,
			Message:        s.Message,
			Recommendation: s.Recommendation,
		})
	}
	return HostNotificationsResponse{
		HostID:                n.HostID,
		DemandNotifications:   demand,
		SeasonalNotifications: seasonal,
		TotalCars:             n.TotalCars,
		Message:               n.Message,
		Timestamp:             n.Timestamp,
	}
}
