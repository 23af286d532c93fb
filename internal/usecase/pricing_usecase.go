package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sarb_ai/internal/domain/entities"
	"sarb_ai/internal/usecase/interfaces"
)

var (
	ErrCarNotFound     = errors.New("car not found")
	ErrInvalidCarType  = errors.New("invalid car type")
	ErrInvalidLocation = errors.New("invalid location")
)

const (
	// defaultMarketPrice seeds initial-price recommendations when the market
	// has no average for the requested car type.
	defaultMarketPrice = 150.0

	// demandStep raises the recommendation 5% per non-cancelled booking.
	demandStep = 0.05

	// marketBlendWeight blends 70% market average with 30% similar-car
	// average; newListingDiscount prices a listing with no comparables
	// slightly below market to seed bookings.
	marketBlendWeight  = 0.7
	newListingDiscount = 0.95
)

// PriceRecommendation is the suggested daily price for an existing car.
type PriceRecommendation struct {
	CarID            int
	CurrentPrice     float64
	RecommendedPrice float64
	Reason           string
}

// InitialPriceRecommendation is the suggested daily price for a new listing.
type InitialPriceRecommendation struct {
	CarType                 string
	Location                string
	MarketAveragePrice      float64
	SimilarCarsCount        int
	RecommendedInitialPrice float64
	Reason                  string
}

// IPricingUseCase exposes price recommendations for existing cars and for
// cars about to be listed.

type IPricingUseCase interface {
	RecommendPrice(ctx context.Context, carID int) (PriceRecommendation, error)
	RecommendInitialPrice(ctx context.Context, carType, location string) (InitialPriceRecommendation, error)
}

type PricingUseCase struct {
	source interfaces.ISnapshotSource
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(source interfaces.ISnapshotSource) *PricingUseCase {
	return &PricingUseCase{source: source}
}

func (u *PricingUseCase) RecommendPrice(ctx context.Context, carID int) (PriceRecommendation, error) {
	snap, err := u.source.Snapshot(ctx)
	if err != nil {
		return PriceRecommendation{}, err
	}
	car, ok := snap.CarByID(carID)
	if !ok {
		return PriceRecommendation{}, ErrCarNotFound
	}

	demand := 0
	for _, b := range snap.Bookings {
		if b.CarID == carID && b.Status != entities.BookingStatusCancelled {
			demand++
		}
	}

	marketPrice, ok := snap.MarketPrice(car.Type)
	if !ok {
		marketPrice = car.PricePerDay
	}
	priceFactor := 1.0 + float64(demand)*demandStep

	return PriceRecommendation{
		CarID:            carID,
		CurrentPrice:     car.PricePerDay,
		RecommendedPrice: round2(marketPrice * priceFactor),
		Reason:           fmt.Sprintf("Based on %d recent bookings", demand),
	}, nil
}

func (u *PricingUseCase) RecommendInitialPrice(ctx context.Context, carType, location string) (InitialPriceRecommendation, error) {
	carType = strings.TrimSpace(carType)
	if carType == "" {
		return InitialPriceRecommendation{}, ErrInvalidCarType
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return InitialPriceRecommendation{}, ErrInvalidLocation
	}

	snap, err := u.source.Snapshot(ctx)
	if err != nil {
		return InitialPriceRecommendation{}, err
	}

	marketPrice, ok := snap.MarketPrice(carType)
	if !ok {
		marketPrice = defaultMarketPrice
	}

	var similar []entities.Car
	for _, c := range snap.Cars {
		if c.Type == carType && c.Location == location {
			similar = append(similar, c)
		}
	}

	var recommended float64
	if len(similar) > 0 {
		sum := 0.0
		for _, c := range similar {
			sum += c.PricePerDay
		}
		avgSimilar := sum / float64(len(similar))
		recommended = marketPrice*marketBlendWeight + avgSimilar*(1-marketBlendWeight)
	} else {
		recommended = marketPrice * newListingDiscount
	}

	return InitialPriceRecommendation{
		CarType:                 carType,
		Location:                location,
		MarketAveragePrice:      round2(marketPrice),
		SimilarCarsCount:        len(similar),
		RecommendedInitialPrice: round2(recommended),
		Reason:                  fmt.Sprintf("Based on market average of %.2f and %d similar cars in the area", marketPrice, len(similar)),
	}, nil
}
