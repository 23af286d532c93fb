package snapshot

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"sarb_ai/internal/domain/entities"
)

// Mapping defaults for the provider's car-shaped booking records. Every
// optional field has one documented substitute; nothing is defaulted at call
// sites.
const (
	defaultBookingUserID = 1
	defaultBookingPrice  = 100.0
)

var (
	defaultBookingStart = time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	defaultBookingEnd   = time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC)
)

// mapCars decodes a raw provider car array. A malformed record is dropped
// with a log line; it never aborts the batch.
func mapCars(raw json.RawMessage) []entities.Car {
	var cars []entities.Car
	for _, item := range splitArray(raw, "car") {
		var rec carRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			log.Printf("[snapshot][mapper] skipping malformed car record err=%v", err)
			continue
		}
		if rec.ID == 0 || rec.Type == "" || rec.PricePerDay <= 0 {
			log.Printf("[snapshot][mapper] skipping invalid car record id=%d", rec.ID)
			continue
		}
		cars = append(cars, entities.Car{
			ID:           rec.ID,
			HostID:       rec.HostID,
			Type:         rec.Type,
			Model:        rec.Model,
			Year:         rec.Year,
			PricePerDay:  float64(rec.PricePerDay),
			Location:     rec.GeoLocation,
			Availability: rec.Available,
		})
	}
	return cars
}

func mapUsers(raw json.RawMessage) []entities.User {
	var users []entities.User
	for _, item := range splitArray(raw, "user") {
		var rec userRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			log.Printf("[snapshot][mapper] skipping malformed user record err=%v", err)
			continue
		}
		name := strings.TrimSpace(rec.FirstName + " " + rec.LastName)
		if rec.ID == 0 || name == "" {
			log.Printf("[snapshot][mapper] skipping invalid user record id=%d", rec.ID)
			continue
		}
		users = append(users, entities.User{ID: rec.ID, Name: name})
	}
	return users
}

// mapBookings translates the provider's car-shaped booking records into
// bookings: car_id takes the record id, user_id takes host_id (default 1),
// the date window and status are fixed defaults, price_paid takes
// price_per_day (default 100).
func mapBookings(raw json.RawMessage) []entities.Booking {
	var bookings []entities.Booking
	for _, item := range splitArray(raw, "booking") {
		var rec bookingRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			log.Printf("[snapshot][mapper] skipping malformed booking record err=%v", err)
			continue
		}
		if rec.ID == 0 {
			log.Printf("[snapshot][mapper] skipping invalid booking record")
			continue
		}
		userID := rec.HostID
		if userID == 0 {
			userID = defaultBookingUserID
		}
		pricePaid := float64(rec.PricePerDay)
		if pricePaid <= 0 {
			pricePaid = defaultBookingPrice
		}
		bookings = append(bookings, entities.Booking{
			ID:        rec.ID,
			CarID:     rec.ID,
			UserID:    userID,
			StartDate: defaultBookingStart,
			EndDate:   defaultBookingEnd,
			PricePaid: pricePaid,
			Status:    entities.BookingStatusConfirmed,
		})
	}
	return bookings
}

// mapMarketPrices decodes the type→average object, dropping entries whose
// value cannot be coerced to a positive number.
func mapMarketPrices(raw json.RawMessage) entities.MarketPrices {
	if len(raw) == 0 {
		return entities.MarketPrices{}
	}
	var byType map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byType); err != nil {
		log.Printf("[snapshot][mapper] market prices decode failed err=%v", err)
		return entities.MarketPrices{}
	}

	prices := make(entities.MarketPrices, len(byType))
	for carType, value := range byType {
		var price flexFloat
		if err := json.Unmarshal(value, &price); err != nil {
			log.Printf("[snapshot][mapper] skipping market price car_type=%s err=%v", carType, err)
			continue
		}
		if price <= 0 {
			log.Printf("[snapshot][mapper] skipping non-positive market price car_type=%s", carType)
			continue
		}
		prices[carType] = float64(price)
	}
	return prices
}

// splitArray breaks a raw JSON array into its elements so one bad record
// cannot poison the rest.
func splitArray(raw json.RawMessage, kind string) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[snapshot][mapper] %s payload is not an array err=%v", kind, err)
		return nil
	}
	return items
}
