package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sarb_ai/internal/domain/entities"
	mock_interfaces "sarb_ai/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pricingSourceFor(t *testing.T, snap entities.Snapshot) *mock_interfaces.MockISnapshotSource {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	source := mock_interfaces.NewMockISnapshotSource(ctrl)
	source.EXPECT().Snapshot(gomock.Any()).Return(snap, nil)
	return source
}

func TestPricingUseCase_RecommendPrice(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC) }

	t.Run("raises the market price per non-cancelled booking", func(t *testing.T) {
		snap := entities.Snapshot{
			Cars: []entities.Car{{ID: 7, Type: "Sedan", PricePerDay: 100}},
			Bookings: []entities.Booking{
				{ID: 1, CarID: 7, StartDate: day(1), EndDate: day(3), Status: entities.BookingStatusConfirmed},
				{ID: 2, CarID: 7, StartDate: day(5), EndDate: day(7), Status: entities.BookingStatusCompleted},
				{ID: 3, CarID: 7, StartDate: day(9), EndDate: day(11), Status: entities.BookingStatusCancelled},
				{ID: 4, CarID: 8, StartDate: day(1), EndDate: day(3), Status: entities.BookingStatusConfirmed},
			},
			MarketPrices: entities.MarketPrices{"Sedan": 100},
		}
		uc := NewPricingUseCase(pricingSourceFor(t, snap))

		rec, err := uc.RecommendPrice(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.CurrentPrice != 100 {
			t.Fatalf("expected current price 100, got %v", rec.CurrentPrice)
		}
		if rec.RecommendedPrice != 110.0 {
			t.Fatalf("expected recommended price 110.0, got %v", rec.RecommendedPrice)
		}
		if rec.Reason != "Based on 2 recent bookings" {
			t.Fatalf("unexpected reason: %q", rec.Reason)
		}
	})

	t.Run("falls back to the car price when the market has no average", func(t *testing.T) {
		snap := entities.Snapshot{
			Cars: []entities.Car{{ID: 7, Type: "Cabrio", PricePerDay: 80}},
			Bookings: []entities.Booking{
				{ID: 1, CarID: 7, StartDate: day(1), EndDate: day(3), Status: entities.BookingStatusConfirmed},
			},
		}
		uc := NewPricingUseCase(pricingSourceFor(t, snap))

		rec, err := uc.RecommendPrice(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.RecommendedPrice != 84.0 {
			t.Fatalf("expected recommended price 84.0, got %v", rec.RecommendedPrice)
		}
	})

	t.Run("no bookings keeps the market price", func(t *testing.T) {
		snap := entities.Snapshot{
			Cars:         []entities.Car{{ID: 7, Type: "Sedan", PricePerDay: 90}},
			MarketPrices: entities.MarketPrices{"Sedan": 120},
		}
		uc := NewPricingUseCase(pricingSourceFor(t, snap))

		rec, err := uc.RecommendPrice(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.RecommendedPrice != 120.0 {
			t.Fatalf("expected recommended price 120.0, got %v", rec.RecommendedPrice)
		}
		if rec.Reason != "Based on 0 recent bookings" {
			t.Fatalf("unexpected reason: %q", rec.Reason)
		}
	})

	t.Run("unknown car", func(t *testing.T) {
		uc := NewPricingUseCase(pricingSourceFor(t, entities.Snapshot{}))
		if _, err := uc.RecommendPrice(context.Background(), 99); !errors.Is(err, ErrCarNotFound) {
			t.Fatalf("expected ErrCarNotFound, got %v", err)
		}
	})
}

func TestPricingUseCase_RecommendInitialPrice(t *testing.T) {
	t.Run("blends market average with similar cars", func(t *testing.T) {
		snap := entities.Snapshot{
			Cars: []entities.Car{
				{ID: 1, Type: "SUV", Location: "Lisbon", PricePerDay: 100},
				{ID: 2, Type: "SUV", Location: "Lisbon", PricePerDay: 150},
				{ID: 3, Type: "SUV", Location: "Porto", PricePerDay: 400},
				{ID: 4, Type: "Sedan", Location: "Lisbon", PricePerDay: 90},
			},
			MarketPrices: entities.MarketPrices{"SUV": 200},
		}
		uc := NewPricingUseCase(pricingSourceFor(t, snap))

		rec, err := uc.RecommendInitialPrice(context.Background(), "SUV", "Lisbon")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.MarketAveragePrice != 200.0 {
			t.Fatalf("expected market average 200.0, got %v", rec.MarketAveragePrice)
		}
		if rec.SimilarCarsCount != 2 {
			t.Fatalf("expected 2 similar cars, got %d", rec.SimilarCarsCount)
		}
		// 0.7*200 + 0.3*125
		if rec.RecommendedInitialPrice != 177.5 {
			t.Fatalf("expected 177.5, got %v", rec.RecommendedInitialPrice)
		}
		if rec.Reason != "Based on market average of 200.00 and 2 similar cars in the area" {
			t.Fatalf("unexpected reason: %q", rec.Reason)
		}
	})

	t.Run("discounts below market when no comparables exist", func(t *testing.T) {
		snap := entities.Snapshot{MarketPrices: entities.MarketPrices{"SUV": 100}}
		uc := NewPricingUseCase(pricingSourceFor(t, snap))

		rec, err := uc.RecommendInitialPrice(context.Background(), "SUV", "Lisbon")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.SimilarCarsCount != 0 {
			t.Fatalf("expected 0 similar cars, got %d", rec.SimilarCarsCount)
		}
		if rec.RecommendedInitialPrice != 95.0 {
			t.Fatalf("expected 95.0, got %v", rec.RecommendedInitialPrice)
		}
	})

	t.Run("unknown car type uses the default market price", func(t *testing.T) {
		uc := NewPricingUseCase(pricingSourceFor(t, entities.Snapshot{}))

		rec, err := uc.RecommendInitialPrice(context.Background(), "Hovercraft", "Lisbon")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.MarketAveragePrice != 150.0 {
			t.Fatalf("expected default market price 150.0, got %v", rec.MarketAveragePrice)
		}
		if rec.RecommendedInitialPrice != 142.5 {
			t.Fatalf("expected 142.5, got %v", rec.RecommendedInitialPrice)
		}
	})

	t.Run("blank car type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPricingUseCase(mock_interfaces.NewMockISnapshotSource(ctrl))
		if _, err := uc.RecommendInitialPrice(context.Background(), "   ", "Lisbon"); !errors.Is(err, ErrInvalidCarType) {
			t.Fatalf("expected ErrInvalidCarType, got %v", err)
		}
	})

	t.Run("blank location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPricingUseCase(mock_interfaces.NewMockISnapshotSource(ctrl))
		if _, err := uc.RecommendInitialPrice(context.Background(), "SUV", ""); !errors.Is(err, ErrInvalidLocation) {
			t.Fatalf("expected ErrInvalidLocation, got %v", err)
		}
	})
}
