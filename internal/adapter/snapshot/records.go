package snapshot

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexFloat tolerates the provider's habit of sending monetary values either
// as numbers or as decimal strings ("150.00").
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// carRecord is the provider's car payload, reduced to the fields the engine
// consumes.
type carRecord struct {
	ID          int       `json:"id"`
	HostID      int       `json:"host_id"`
	Type        string    `json:"type"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	PricePerDay flexFloat `json:"price_per_day"`
	GeoLocation string    `json:"geo_location"`
	Available   bool      `json:"available"`
}

// bookingRecord mirrors carRecord on purpose: the provider's booking endpoint
// is known to return car-shaped records. The mapper fills the booking-only
// fields with documented defaults.
type bookingRecord struct {
	ID          int       `json:"id"`
	HostID      int       `json:"host_id"`
	PricePerDay flexFloat `json:"price_per_day"`
}

type userRecord struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
