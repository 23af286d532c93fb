package entities

import "time"

// Snapshot is the immutable point-in-time view of the marketplace used for a
// single computation. It is assembled by the snapshot source from provider
// data; the analytics engine is a pure function of one Snapshot and holds no
// entity across calls.
type Snapshot struct {
	Cars         []Car         `json:"cars"`
	Users        []User        `json:"users"`
	Bookings     []Booking     `json:"bookings"`
	MarketPrices MarketPrices  `json:"market_prices"`
	Areas        []MapAreaStat `json:"areas"`
	Events       []Event       `json:"events"`
	FetchedAt    time.Time     `json:"fetched_at"`
}

func (s Snapshot) CarByID(id int) (Car, bool) {
	for _, c := range s.Cars {
		if c.ID == id {
			return c, true
		}
	}
	return Car{}, false
}

func (s Snapshot) UserByID(id int) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (s Snapshot) BookingByID(id int) (Booking, bool) {
	for _, b := range s.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return Booking{}, false
}

func (s Snapshot) AreaByID(id int) (MapAreaStat, bool) {
	for _, a := range s.Areas {
		if a.AreaID == id {
			return a, true
		}
	}
	return MapAreaStat{}, false
}

// MarketPrice resolves the average market price for a car type.
func (s Snapshot) MarketPrice(carType string) (float64, bool) {
	p, ok := s.MarketPrices[carType]
	return p, ok
}

// CarsByHost returns every car listed by the given host.
func (s Snapshot) CarsByHost(hostID int) []Car {
	var out []Car
	for _, c := range s.Cars {
		if c.HostID == hostID {
			out = append(out, c)
		}
	}
	return out
}
