package interfaces

import (
	"context"
	"encoding/json"
)

// IProviderClient abstracts the external marketplace data provider.
//
// Collections come back as raw JSON so the transport stays decoupled from the
// record schema; the snapshot mapping layer owns decoding, validation and
// defaulting. Every method may fail (network, auth, 5xx) and callers must
// degrade to empty data rather than propagate the fault.
type IProviderClient interface {
	FetchCars(ctx context.Context) (json.RawMessage, error)
	FetchUsers(ctx context.Context) (json.RawMessage, error)
	FetchBookings(ctx context.Context) (json.RawMessage, error)
	FetchAveragePrices(ctx context.Context) (json.RawMessage, error)
}
