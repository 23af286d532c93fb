package usecase

import (
	"context"
	"errors"
	"sort"

	"sarb_ai/internal/domain/entities"
	"sarb_ai/internal/usecase/interfaces"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

const (
	// Defaults applied when the caller supplies no preferences. The user
	// entity carries none, so these are explicit parameters rather than
	// hidden state.
	DefaultPreferredType = "Sedan"
	DefaultMaxPrice      = 300.0

	maxCarRecommendations  = 5
	maxAreaRecommendations = 3

	// areaPriceCeiling normalizes best_price into a [0, 1] score.
	areaPriceCeiling = 500.0
)

// CarPreferences are caller-supplied recommendation filters.
type CarPreferences struct {
	PreferredType string
	MaxPrice      float64
}

// Normalize fills zero values with the documented defaults.
func (p CarPreferences) Normalize() CarPreferences {
	if p.PreferredType == "" {
		p.PreferredType = DefaultPreferredType
	}
	if p.MaxPrice <= 0 {
		p.MaxPrice = DefaultMaxPrice
	}
	return p
}

// AreaRecommendation is one scored area for a user.
type AreaRecommendation struct {
	AreaID        int
	Score         float64
	AvailableCars int
	BestPrice     float64
}

// IRecommendationUseCase scores cars and areas for a given user.

type IRecommendationUseCase interface {
	RecommendCars(ctx context.Context, userID int, prefs CarPreferences) ([]entities.Car, error)
	RecommendAreas(ctx context.Context, userID int) ([]AreaRecommendation, error)
}

type RecommendationUseCase struct {
	source interfaces.ISnapshotSource
}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

func NewRecommendationUseCase(source interfaces.ISnapshotSource) *RecommendationUseCase {
	return &RecommendationUseCase{source: source}
}

func (u *RecommendationUseCase) RecommendCars(ctx context.Context, userID int, prefs CarPreferences) ([]entities.Car, error) {
	snap, err := u.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.UserByID(userID); !ok {
		return nil, ErrUserNotFound
	}
	prefs = prefs.Normalize()

	var recommended []entities.Car
	for _, c := range snap.Cars {
		if c.Type == prefs.PreferredType && c.PricePerDay <= prefs.MaxPrice && c.Availability {
			recommended = append(recommended, c)
		}
	}

	sort.Slice(recommended, func(i, j int) bool {
		if recommended[i].PricePerDay != recommended[j].PricePerDay {
			return recommended[i].PricePerDay < recommended[j].PricePerDay
		}
		return recommended[i].ID < recommended[j].ID
	})

	if len(recommended) > maxCarRecommendations {
		recommended = recommended[:maxCarRecommendations]
	}
	return recommended, nil
}

func (u *RecommendationUseCase) RecommendAreas(ctx context.Context, userID int) ([]AreaRecommendation, error) {
	snap, err := u.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.UserByID(userID); !ok {
		return nil, ErrUserNotFound
	}

	recommended := make([]AreaRecommendation, 0, len(snap.Areas))
	for _, area := range snap.Areas {
		availabilityScore := 1 - area.Utilization()
		priceScore := 1 - area.BestPrice/areaPriceCeiling
		score := availabilityScore*0.6 + priceScore*0.4

		recommended = append(recommended, AreaRecommendation{
			AreaID:        area.AreaID,
			Score:         round2(score),
			AvailableCars: area.AvailableCars(),
			BestPrice:     area.BestPrice,
		})
	}

	sort.Slice(recommended, func(i, j int) bool {
		if recommended[i].Score != recommended[j].Score {
			return recommended[i].Score > recommended[j].Score
		}
		return recommended[i].AreaID < recommended[j].AreaID
	})

	if len(recommended) > maxAreaRecommendations {
		recommended = recommended[:maxAreaRecommendations]
	}
	return recommended, nil
}
