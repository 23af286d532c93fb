package entities

// Car is the internal view of a provider car record.
//
// Provider notes:
//   - price_per_day arrives as a decimal string and is parsed by the
//     snapshot mapping layer; anything non-positive is rejected there.
//   - location carries the provider's geo_location field.
//   - HostID links the car to its host for notification fan-out.
type Car struct {
	ID           int     `json:"id"`
	HostID       int     `json:"host_id"`
	Type         string  `json:"type"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	PricePerDay  float64 `json:"price_per_day"`
	Location     string  `json:"location"`
	Availability bool    `json:"availability"`
}

// User is the internal view of a provider user record.
//
// The provider exposes no stored preferences; recommendation inputs such as
// preferred car type and price ceiling are caller-supplied parameters.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
