package usecase

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// round2 rounds to 2 decimal places; every monetary output and reported rate
// goes through it.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clampDemand caps an expected-demand score to [0.1, 1.0].
func clampDemand(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// floorDays returns the whole number of days from `from` to `to`, floored
// (negative spans floor away from zero, matching calendar intuition: a start
// 10 hours in the past is -1 days away).
func floorDays(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
