package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"sarb_ai/internal/domain/entities"
	"sarb_ai/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	notificationWindowDays  = 30
	notificationChance      = 0.3
	highDemandThreshold     = 0.7
	lowUtilizationThreshold = 0.8
	noHostCarsMessage       = "No cars found for this host"
	summerPeriod            = "Summer Season"
	summerMessage           = "Summer is peak season for car rentals. Consider adjusting prices upward."
	summerRecommendation    = "Increase prices by 10-20% during peak summer months"
)

// holiday is a fixed calendar rule evaluated against its nearest future
// occurrence.
type holiday struct {
	month time.Month
	day   int
	name  string
}

var upcomingHolidays = []holiday{
	{time.December, 25, "Christmas"},
	{time.December, 31, "New Year's Eve"},
	{time.January, 1, "New Year's Day"},
}

// DemandNotification flags one low-utilization day inside a high-demand
// window.
type DemandNotification struct {
	ID                       string
	Date                     string
	Message                  string
	UtilizationRate          float64
	PotentialRevenueIncrease string
}

// SeasonalNotification is a deterministic calendar-rule notice.
type SeasonalNotification struct {
	ID             string
	Period         string
	Message        string
	Recommendation string
}

// HostNotifications bundles everything a host should act on right now.
// A host with zero listings gets an empty, non-error result.
type HostNotifications struct {
	HostID                int
	DemandNotifications   []DemandNotification
	SeasonalNotifications []SeasonalNotification
	TotalCars             int
	Message               string
	Timestamp             time.Time
}

// IHostNotificationUseCase composes hotspot rankings, the host's fleet and
// calendar rules into proactive notifications.

type IHostNotificationUseCase interface {
	Notify(ctx context.Context, hostID int) (HostNotifications, error)
}

type HostNotificationUseCase struct {
	source interfaces.ISnapshotSource
	demand IDemandUseCase
	noise  interfaces.IDemandNoise
}

var _ IHostNotificationUseCase = (*HostNotificationUseCase)(nil)

func NewHostNotificationUseCase(source interfaces.ISnapshotSource, demand IDemandUseCase, noise interfaces.IDemandNoise) *HostNotificationUseCase {
	return &HostNotificationUseCase{source: source, demand: demand, noise: noise}
}

func (u *HostNotificationUseCase) Notify(ctx context.Context, hostID int) (HostNotifications, error) {
	snap, err := u.source.Snapshot(ctx)
	if err != nil {
		return HostNotifications{}, err
	}

	now := time.Now()
	hostCars := snap.CarsByHost(hostID)
	if len(hostCars) == 0 {
		log.Printf("[notification][usecase] no cars for host host_id=%d", hostID)
		return HostNotifications{
			HostID:                hostID,
			DemandNotifications:   []DemandNotification{},
			SeasonalNotifications: []SeasonalNotification{},
			Message:               noHostCarsMessage,
			Timestamp:             now,
		}, nil
	}

	prediction, err := u.demand.PredictHotspots(ctx)
	if err != nil {
		return HostNotifications{}, err
	}

	return HostNotifications{
		HostID:                hostID,
		DemandNotifications:   u.composeDemandNotifications(hostCars, snap.Bookings, prediction.Hotspots, now),
		SeasonalNotifications: composeSeasonalNotifications(now),
		TotalCars:             len(hostCars),
		Timestamp:             now,
	}, nil
}

// composeDemandNotifications scans the next 30 days: when any hotspot runs
// hot and the per-day gate fires, a day where the host's fleet sits under 80%
// utilization becomes a notification.
func (u *HostNotificationUseCase) composeDemandNotifications(hostCars []entities.Car, bookings []entities.Booking, hotspots []Hotspot, today time.Time) []DemandNotification {
	highDemand := false
	for _, h := range hotspots {
		if h.ExpectedDemand > highDemandThreshold {
			highDemand = true
			break
		}
	}

	hostCarIDs := make(map[int]bool, len(hostCars))
	for _, c := range hostCars {
		hostCarIDs[c.ID] = true
	}

	notifications := []DemandNotification{}
	for i := 0; i < notificationWindowDays; i++ {
		day := today.AddDate(0, 0, i)
		if !highDemand || !u.noise.Gate(notificationChance) {
			continue
		}

		booked := 0
		for _, b := range bookings {
			if hostCarIDs[b.CarID] && b.Overlaps(day) {
				booked++
			}
		}
		utilization := float64(booked) / float64(len(hostCars))
		if utilization >= lowUtilizationThreshold {
			continue
		}

		dateStr := day.Format(dateLayout)
		increase := int(math.Round((lowUtilizationThreshold - utilization) * 100))
		notifications = append(notifications, DemandNotification{
			ID:                       uuid.NewString(),
			Date:                     dateStr,
			Message:                  fmt.Sprintf("High demand expected on %s. Consider making your cars available for better profits.", dateStr),
			UtilizationRate:          round2(utilization),
			PotentialRevenueIncrease: fmt.Sprintf("%d%% potential increase", increase),
		})
	}
	return notifications
}

// composeSeasonalNotifications applies the fixed summer and holiday rules.
func composeSeasonalNotifications(today time.Time) []SeasonalNotification {
	notifications := []SeasonalNotification{}

	switch today.Month() {
	case time.June, time.July, time.August:
		notifications = append(notifications, SeasonalNotification{
			ID:             uuid.NewString(),
			Period:         summerPeriod,
			Message:        summerMessage,
			Recommendation: summerRecommendation,
		})
	}

	for _, h := range upcomingHolidays {
		date := time.Date(today.Year(), h.month, h.day, 0, 0, 0, 0, today.Location())
		if floorDays(today, date) < 0 {
			date = date.AddDate(1, 0, 0)
		}
		daysUntil := floorDays(today, date)
		if daysUntil < 0 || daysUntil > notificationWindowDays {
			continue
		}
		notifications = append(notifications, SeasonalNotification{
			ID:             uuid.NewString(),
			Period:         fmt.Sprintf("Upcoming %s", h.name),
			Message:        fmt.Sprintf("%s is coming up. This is typically a high-demand period.", h.name),
			Recommendation: fmt.Sprintf("Ensure your cars are available from %s for maximum bookings", date.Format(dateLayout)),
		})
	}
	return notifications
}
