package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sarb_ai/internal/domain/entities"
	mock_interfaces "sarb_ai/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestHostNotificationUseCase_Notify(t *testing.T) {
	t.Run("host without cars gets an empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISnapshotSource(ctrl)
		noise := mock_interfaces.NewMockIDemandNoise(ctrl)

		snap := entities.Snapshot{Cars: []entities.Car{{ID: 1, HostID: 2, Type: "Sedan", PricePerDay: 100}}}
		source.EXPECT().Snapshot(gomock.Any()).Return(snap, nil)

		uc := NewHostNotificationUseCase(source, NewDemandUseCase(source, noise), noise)
		got, err := uc.Notify(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Message != noHostCarsMessage {
			t.Fatalf("unexpected message: %q", got.Message)
		}
		if len(got.DemandNotifications) != 0 || len(got.SeasonalNotifications) != 0 {
			t.Fatalf("expected empty notifications, got %+v", got)
		}
		if got.TotalCars != 0 {
			t.Fatalf("expected 0 cars, got %d", got.TotalCars)
		}
	})

	t.Run("flags low utilization days inside a hot window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISnapshotSource(ctrl)
		noise := mock_interfaces.NewMockIDemandNoise(ctrl)

		today := time.Now()
		snap := entities.Snapshot{
			Cars: []entities.Car{
				{ID: 1, HostID: 5, Type: "Sedan", PricePerDay: 100},
				{ID: 2, HostID: 5, Type: "SUV", PricePerDay: 150},
			},
			Bookings: []entities.Booking{
				{ID: 1, CarID: 1, StartDate: today.AddDate(0, 0, -1), EndDate: today.AddDate(0, 0, 4), Status: entities.BookingStatusConfirmed},
			},
			Areas: []entities.MapAreaStat{entities.NewMapAreaStat(1, 10, 10, 120)},
		}
		source.EXPECT().Snapshot(gomock.Any()).Return(snap, nil).Times(2)
		noise.EXPECT().Factor().Return(1.0)
		gomock.InOrder(
			noise.EXPECT().Gate(notificationChance).Return(true),
			noise.EXPECT().Gate(notificationChance).Return(false).Times(notificationWindowDays-1),
		)

		uc := NewHostNotificationUseCase(source, NewDemandUseCase(source, noise), noise)
		got, err := uc.Notify(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalCars != 2 {
			t.Fatalf("expected 2 cars, got %d", got.TotalCars)
		}
		if len(got.DemandNotifications) != 1 {
			t.Fatalf("expected 1 demand notification, got %d", len(got.DemandNotifications))
		}

		n := got.DemandNotifications[0]
		if n.UtilizationRate != 0.5 {
			t.Fatalf("expected utilization 0.5, got %v", n.UtilizationRate)
		}
		if n.PotentialRevenueIncrease != "30% potential increase" {
			t.Fatalf("unexpected revenue increase: %q", n.PotentialRevenueIncrease)
		}
		if n.ID == "" || n.Date == "" {
			t.Fatalf("expected id and date to be set: %+v", n)
		}
		wantMsg := fmt.Sprintf("High demand expected on %s. Consider making your cars available for better profits.", n.Date)
		if n.Message != wantMsg {
			t.Fatalf("unexpected message: %q", n.Message)
		}
	})

	t.Run("well utilized days are not flagged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISnapshotSource(ctrl)
		noise := mock_interfaces.NewMockIDemandNoise(ctrl)

		today := time.Now()
		snap := entities.Snapshot{
			Cars: []entities.Car{{ID: 1, HostID: 5, Type: "Sedan", PricePerDay: 100}},
			Bookings: []entities.Booking{
				{ID: 1, CarID: 1, StartDate: today.AddDate(0, 0, -1), EndDate: today.AddDate(0, 0, 40), Status: entities.BookingStatusConfirmed},
			},
			Areas: []entities.MapAreaStat{entities.NewMapAreaStat(1, 10, 10, 120)},
		}
		source.EXPECT().Snapshot(gomock.Any()).Return(snap, nil).Times(2)
		noise.EXPECT().Factor().Return(1.0)
		noise.EXPECT().Gate(notificationChance).Return(true).Times(notificationWindowDays)

		uc := NewHostNotificationUseCase(source, NewDemandUseCase(source, noise), noise)
		got, err := uc.Notify(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.DemandNotifications) != 0 {
			t.Fatalf("expected no demand notifications, got %d", len(got.DemandNotifications))
		}
	})

	t.Run("quiet market skips the gate entirely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISnapshotSource(ctrl)
		noise := mock_interfaces.NewMockIDemandNoise(ctrl)

		snap := entities.Snapshot{
			Cars:  []entities.Car{{ID: 1, HostID: 5, Type: "Sedan", PricePerDay: 100}},
			Areas: []entities.MapAreaStat{entities.NewMapAreaStat(1, 10, 5, 120)},
		}
		source.EXPECT().Snapshot(gomock.Any()).Return(snap, nil).Times(2)
		noise.EXPECT().Factor().Return(1.0)

		uc := NewHostNotificationUseCase(source, NewDemandUseCase(source, noise), noise)
		got, err := uc.Notify(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.DemandNotifications) != 0 {
			t.Fatalf("expected no demand notifications, got %d", len(got.DemandNotifications))
		}
	})
}

func TestComposeSeasonalNotifications(t *testing.T) {
	t.Run("summer month", func(t *testing.T) {
		today := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
		got := composeSeasonalNotifications(today)
		if len(got) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(got))
		}
		if got[0].Period != summerPeriod {
			t.Fatalf("expected summer period, got %q", got[0].Period)
		}
		if got[0].Recommendation != summerRecommendation {
			t.Fatalf("unexpected recommendation: %q", got[0].Recommendation)
		}
	})

	t.Run("early december sees all three holidays", func(t *testing.T) {
		today := time.Date(2025, 12, 10, 10, 0, 0, 0, time.UTC)
		got := composeSeasonalNotifications(today)
		if len(got) != 3 {
			t.Fatalf("expected 3 notifications, got %d", len(got))
		}
		if got[0].Period != "Upcoming Christmas" {
			t.Fatalf("unexpected period: %q", got[0].Period)
		}
		if got[0].Recommendation != "Ensure your cars are available from 2025-12-25 for maximum bookings" {
			t.Fatalf("unexpected recommendation: %q", got[0].Recommendation)
		}
		// New Year's Day rolls over to the next calendar year.
		if got[2].Period != "Upcoming New Year's Day" {
			t.Fatalf("unexpected period: %q", got[2].Period)
		}
		if got[2].Recommendation != "Ensure your cars are available from 2026-01-01 for maximum bookings" {
			t.Fatalf("unexpected recommendation: %q", got[2].Recommendation)
		}
	})

	t.Run("off season is quiet", func(t *testing.T) {
		today := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
		if got := composeSeasonalNotifications(today); len(got) != 0 {
			t.Fatalf("expected no notifications, got %d", len(got))
		}
	})
}
