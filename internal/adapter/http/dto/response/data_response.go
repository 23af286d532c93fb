package response

import "sarb_ai/internal/domain/entities"

// DTOs for the raw data endpoints. Cars drop the host linkage and bookings
// render their dates as plain YYYY-MM-DD, matching the provider-facing
// contract.

const dateLayout = "2006-01-02"

type CarResponse struct {
	ID           int     `json:"id"`
	Type         string  `json:"type"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	PricePerDay  float64 `json:"price_per_day"`
	Location     string  `json:"location"`
	Availability bool    `json:"availability"`
}

func FromCars(cars []entities.Car) []CarResponse {
	out := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, CarResponse{
			ID:           c.ID,
			Type:         c.Type,
			Model:        c.Model,
			Year:         c.Year,
			PricePerDay:  c.PricePerDay,
			Location:     c.Location,
			Availability: c.Availability,
		})
	}
	return out
}

type BookingResponse struct {
	ID        int     `json:"id"`
	CarID     int     `json:"car_id"`
	UserID    int     `json:"user_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	PricePaid float64 `json:"price_paid"`
	Status    string  `json:"status"`
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingResponse{
			ID:        b.ID,
			CarID:     b.CarID,
			UserID:    b.UserID,
			StartDate: b.StartDate.Format(dateLayout),
			EndDate:   b.EndDate.Format(dateLayout),
			PricePaid: b.PricePaid,
			Status:    string(b.Status),
		})
	}
	return out
}

type MarketPriceResponse struct {
	CarType      string  `json:"car_type"`
	AveragePrice float64 `json:"average_price"`
}

type MapViewResponse struct {
	AreaID      int     `json:"area_id"`
	CarsCount   int     `json:"cars_count"`
	BookedCount int     `json:"booked_count"`
	BestPrice   float64 `json:"best_price"`
}

func FromAreas(areas []entities.MapAreaStat) []MapViewResponse {
	out := make([]MapViewResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, MapViewResponse{
			AreaID:      a.AreaID,
			CarsCount:   a.CarsCount,
			BookedCount: a.BookedCount,
			BestPrice:   a.BestPrice,
		})
	}
	return out
}
