package response

import "sarb_ai/internal/usecase"

type PriceRecommendationResponse struct {
	CarID            int     `json:"car_id"`
	CurrentPrice     float64 `json:"current_price"`
	RecommendedPrice float64 `json:"recommended_price"`
	Reason           string  `json:"reason"`
}

func FromPriceRecommendation(p usecase.PriceRecommendation) PriceRecommendationResponse {
	return PriceRecommendationResponse{
		CarID:            p.CarID,
		CurrentPrice:     p.CurrentPrice,
		RecommendedPrice: p.RecommendedPrice,
		Reason:           p.Reason,
	}
}

type InitialPriceRecommendationResponse struct {
	CarType                 string  `json:"car_type"`
	Location                string  `json:"location"`
	MarketAveragePrice      float64 `json:"market_average_price"`
	SimilarCarsCount        int     `json:"similar_cars_count"`
	RecommendedInitialPrice float64 `json:"recommended_initial_price"`
	Reason                  string  `json:"reason"`
}

func FromInitialPriceRecommendation(p usecase.InitialPriceRecommendation) InitialPriceRecommendationResponse {
	return InitialPriceRecommendationResponse{
		CarType:                 p.CarType,
		Location:                p.Location,
		MarketAveragePrice:      p.MarketAveragePrice,
		SimilarCarsCount:        p.SimilarCarsCount,
		RecommendedInitialPrice: p.RecommendedInitialPrice,
		Reason:                  p.Reason,
	}
}

type CancellationResponse struct {
	BookingID int    `json:"booking_id"`
	CanCancel bool   `json:"can_cancel"`
	Reason    string `json:"reason"`
}

func FromCancellationDecision(d usecase.CancellationDecision) CancellationResponse {
	return CancellationResponse{BookingID: d.BookingID, CanCancel: d.CanCancel, Reason: d.Reason}
}
