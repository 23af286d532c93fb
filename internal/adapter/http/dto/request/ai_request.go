package request

import "strings"

// InitialPriceRequest carries the query parameters of the initial-price
// recommendation endpoint.
type InitialPriceRequest struct {
	CarType  string `form:"car_type" binding:"required"`
	Location string `form:"location" binding:"required"`
}

func (r InitialPriceRequest) ResolveCarType() string {
	return strings.TrimSpace(r.CarType)
}

func (r InitialPriceRequest) ResolveLocation() string {
	return strings.TrimSpace(r.Location)
}

// CarRecommendationRequest carries optional preference overrides. The user
// entity stores no preferences, so callers supply them explicitly; zero
// values fall back to the engine defaults (Sedan, 300).
type CarRecommendationRequest struct {
	PreferredType string  `form:"preferred_type"`
	MaxPrice      float64 `form:"max_price"`
}
