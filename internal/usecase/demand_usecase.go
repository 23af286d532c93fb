package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"sarb_ai/internal/usecase/interfaces"
)

var (
	ErrAreaNotFound = errors.New("area not found")
)

const (
	actionIncreaseSupply = "Increase supply"
	actionMonitor        = "Monitor"
	actionPromotions     = "Consider promotions"
	actionMaintain       = "Maintain current strategy"

	peakDateChance     = 0.3
	hotDemandThreshold = 0.8
)

// DemandForecast is the per-area demand outlook over the next 7 days.
type DemandForecast struct {
	AreaID         int
	ExpectedDemand float64
	PeakDates      []string
}

// Hotspot is one entry of the cross-area demand ranking.
type Hotspot struct {
	AreaID             int
	ExpectedDemand     float64
	CurrentUtilization float64
	RecommendedAction  string
}

// HotspotPrediction is the full ranking plus the snapshot timestamp.
type HotspotPrediction struct {
	Hotspots  []Hotspot
	Timestamp time.Time
}

// MapInsights summarizes supply, utilization and suggested action for an area.
type MapInsights struct {
	AreaID            int
	TotalCars         int
	AvailableCars     int
	UtilizationRate   float64
	BestPrice         float64
	RecommendedAction string
}

// IDemandUseCase exposes the demand-side analytics:
//   - ForecastDemand: expected demand + candidate peak dates for one area
//   - PredictHotspots: ranked demand across all areas
//   - MapInsights: utilization summary for one area

type IDemandUseCase interface {
	ForecastDemand(ctx context.Context, areaID int) (DemandForecast, error)
	PredictHotspots(ctx context.Context) (HotspotPrediction, error)
	MapInsights(ctx context.Context, areaID int) (MapInsights, error)
}

type DemandUseCase struct {
	source interfaces.ISnapshotSource
	noise  interfaces.IDemandNoise
}

var _ IDemandUseCase = (*DemandUseCase)(nil)

func NewDemandUseCase(source interfaces.ISnapshotSource, noise interfaces.IDemandNoise) *DemandUseCase {
	return &DemandUseCase{source: source, noise: noise}
}

func (u *DemandUseCase) ForecastDemand(ctx context.Context, areaID int) (DemandForecast, error) {
	snap, err := u.source.Snapshot(ctx)
	if err != nil {
		return DemandForecast{}, err
	}
	area, ok := snap.AreaByID(areaID)
	if !ok {
		return DemandForecast{}, ErrAreaNotFound
	}

	demand := clampDemand(area.Utilization() * u.noise.Factor())

	// Candidate peak dates over the next 7 days, one Bernoulli draw per day.
	var peaks []string
	now := time.Now()
	for i := 1; i <= 7; i++ {
		if u.noise.Gate(peakDateChance) {
			peaks = append(peaks, now.AddDate(0, 0, i).Format(dateLayout))
		}
	}

	return DemandForecast{AreaID: areaID, ExpectedDemand: demand, PeakDates: peaks}, nil
}

func (u *DemandUseCase) PredictHotspots(ctx context.Context) (HotspotPrediction, error) {
	snap, err := u.source.Snapshot(ctx)
	if err != nil {
		return HotspotPrediction{}, err
	}

	hotspots := make([]Hotspot, 0, len(snap.Areas))
	for _, area := range snap.Areas {
		demand := clampDemand(area.Utilization() * u.noise.Factor())
		action := actionMonitor
		if demand > hotDemandThreshold {
			action = actionIncreaseSupply
		}
		hotspots = append(hotspots, Hotspot{
			AreaID:             area.AreaID,
			ExpectedDemand:     round2(demand),
			CurrentUtilization: round2(area.Utilization()),
			RecommendedAction:  action,
		})
	}

	// Descending by expected demand; equal-demand areas in ascending area id
	// so the ranking is a pure function of the snapshot contents.
	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].ExpectedDemand != hotspots[j].ExpectedDemand {
			return hotspots[i].ExpectedDemand > hotspots[j].ExpectedDemand
		}
		return hotspots[i].AreaID < hotspots[j].AreaID
	})

	return HotspotPrediction{Hotspots: hotspots, Timestamp: time.Now()}, nil
}

func (u *DemandUseCase) MapInsights(ctx context.Context, areaID int) (MapInsights, error) {
	snap, err := u.source.Snapshot(ctx)
	if err != nil {
		return MapInsights{}, err
	}
	area, ok := snap.AreaByID(areaID)
	if !ok {
		return MapInsights{}, ErrAreaNotFound
	}

	util := area.Utilization()
	action := actionMaintain
	switch {
	case util > 0.8:
		action = actionIncreaseSupply
	case util < 0.3:
		action = actionPromotions
	}

	return MapInsights{
		AreaID:            areaID,
		TotalCars:         area.CarsCount,
		AvailableCars:     area.AvailableCars(),
		UtilizationRate:   round2(util),
		BestPrice:         area.BestPrice,
		RecommendedAction: action,
	}, nil
}
