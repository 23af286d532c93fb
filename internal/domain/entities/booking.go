package entities

import "time"

// BookingStatus represents the lifecycle of a booking as reported by the
// provider. The engine never transitions a booking; it only reads status to
// exclude cancelled ones from demand counting.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is the internal view of a provider booking record.
//
// Provider notes:
//   - The booking endpoint is known to return car-shaped records; the
//     snapshot mapping layer fills the gaps with documented defaults.
//   - StartDate < EndDate holds for every record that survives mapping.
type Booking struct {
	ID        int           `json:"id"`
	CarID     int           `json:"car_id"`
	UserID    int           `json:"user_id"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	PricePaid float64       `json:"price_paid"`
	Status    BookingStatus `json:"status"`
}

// Overlaps reports whether day falls inside the booking window, inclusive on
// both ends.
func (b Booking) Overlaps(day time.Time) bool {
	return !day.Before(b.StartDate) && !day.After(b.EndDate)
}
