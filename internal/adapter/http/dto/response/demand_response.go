package response

import (
	"time"

	"sarb_ai/internal/usecase"
)

type DemandForecastResponse struct {
	AreaID         int      `json:"area_id"`
	ExpectedDemand float64  `json:"expected_demand"`
	PeakDates      []string `json:"peak_dates"`
}

func FromDemandForecast(f usecase.DemandForecast) DemandForecastResponse {
	peaks := f.PeakDates
	if peaks == nil {
		peaks = []string{}
	}
	return DemandForecastResponse{
		AreaID:         f.AreaID,
		ExpectedDemand: f.ExpectedDemand,
		PeakDates:      peaks,
	}
}

type HotspotResponse struct {
	AreaID             int     `json:"area_id"`
	ExpectedDemand     float64 `json:"expected_demand"`
	CurrentUtilization float64 `json:"current_utilization"`
	RecommendedAction  string  `json:"recommended_action"`
}

type HotspotPredictionResponse struct {
	Hotspots  []HotspotResponse `json:"hotspots"`
	Timestamp time.Time         `json:"timestamp"`
}

func FromHotspotPrediction(p usecase.HotspotPrediction) HotspotPredictionResponse {
	hotspots := make([]HotspotResponse, 0, len(p.Hotspots))
	for _, h := range p.Hotspots {
		hotspots = append(hotspots, HotspotResponse{
			AreaID:             h.AreaID,
			ExpectedDemand:     h.ExpectedDemand,
			CurrentUtilization: h.CurrentUtilization,
			RecommendedAction:  h.RecommendedAction,
		})
	}
	return HotspotPredictionResponse{Hotspots: hotspots, Timestamp: p.Timestamp}
}

type MapInsightsResponse struct {
	AreaID            int     `json:"area_id"`
	TotalCars         int     `json:"total_cars"`
	AvailableCars     int     `json:"available_cars"`
	UtilizationRate   float64 `json:"utilization_rate"`
	BestPrice         float64 `json:"best_price"`
	RecommendedAction string  `json:"recommended_action"`
}

func FromMapInsights(m usecase.MapInsights) MapInsightsResponse {
	return MapInsightsResponse{
		AreaID:            m.AreaID,
		TotalCars:         m.TotalCars,
		AvailableCars:     m.AvailableCars,
		UtilizationRate:   m.UtilizationRate,
		BestPrice:         m.BestPrice,
		RecommendedAction: m.RecommendedAction,
	}
}
