package response

import (
	"sarb_ai/internal/domain/entities"
	"sarb_ai/internal/usecase"
)

type RecommendedCarResponse struct {
	CarID       int     `json:"car_id"`
	Type        string  `json:"type"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PricePerDay float64 `json:"price_per_day"`
}

type CarRecommendationsResponse struct {
	UserID          int                      `json:"user_id"`
	RecommendedCars []RecommendedCarResponse `json:"recommended_cars"`
}

func FromCarRecommendations(userID int, cars []entities.Car) CarRecommendationsResponse {
	recommended := make([]RecommendedCarResponse, 0, len(cars))
	for _, c := range cars {
		recommended = append(recommended, RecommendedCarResponse{
			CarID:       c.ID,
			Type:        c.Type,
			Model:       c.Model,
			Year:        c.Year,
			PricePerDay: c.PricePerDay,
		})
	}
	return CarRecommendationsResponse{UserID: userID, RecommendedCars: recommended}
}

type RecommendedAreaResponse struct {
	AreaID        int     `json:"area_id"`
	Score         float64 `json:"score"`
	AvailableCars int     `json:"available_cars"`
	BestPrice     float64 `json:"best_price"`
}

type AreaRecommendationsResponse struct {
	UserID           int                       `json:"user_id"`
	RecommendedAreas []RecommendedAreaResponse `json:"recommended_areas"`
}

func FromAreaRecommendations(userID int, areas []usecase.AreaRecommendation) AreaRecommendationsResponse {
	recommended := make([]RecommendedAreaResponse, 0, len(areas))
	for _, a := range areas {
		recommended = append(recommended, RecommendedAreaResponse{
			AreaID:        a.AreaID,
			Score:         a.Score,
			AvailableCars: a.AvailableCars,
			BestPrice:     a.BestPrice,
		})
	}
	return AreaRecommendationsResponse{UserID: userID, RecommendedAreas: recommended}
}
