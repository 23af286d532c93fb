package entities

// MarketPrices maps a car type to its marketplace average daily price.
// Absent types fall back to caller-supplied defaults in the pricing engine.
type MarketPrices map[string]float64

// MapAreaStat is the per-area supply/demand summary shown on the map.
//
// The provider does not guarantee booked_count <= cars_count, so construction
// goes through NewMapAreaStat which clamps the pair.
type MapAreaStat struct {
	AreaID      int     `json:"area_id"`
	CarsCount   int     `json:"cars_count"`
	BookedCount int     `json:"booked_count"`
	BestPrice   float64 `json:"best_price"`
}

// NewMapAreaStat builds an area stat with counts clamped to sane ranges:
// cars_count >= 0 and 0 <= booked_count <= cars_count.
func NewMapAreaStat(areaID, carsCount, bookedCount int, bestPrice float64) MapAreaStat {
	if carsCount < 0 {
		carsCount = 0
	}
	if bookedCount < 0 {
		bookedCount = 0
	}
	if bookedCount > carsCount {
		bookedCount = carsCount
	}
	return MapAreaStat{AreaID: areaID, CarsCount: carsCount, BookedCount: bookedCount, BestPrice: bestPrice}
}

// Utilization returns booked_count / max(1, cars_count) clamped to [0, 1].
func (a MapAreaStat) Utilization() float64 {
	denom := a.CarsCount
	if denom < 1 {
		denom = 1
	}
	u := float64(a.BookedCount) / float64(denom)
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}

// AvailableCars returns the unbooked count for the area.
func (a MapAreaStat) AvailableCars() int {
	return a.CarsCount - a.BookedCount
}

// Event is an upcoming marketplace event (concert, conference, ...).
type Event struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}
