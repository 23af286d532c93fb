package interfaces

import (
	"context"

	"sarb_ai/internal/domain/entities"
)

// ISnapshotSource hands the engine one immutable marketplace snapshot per
// request.
//
// Implementations must be fail-soft: an unreachable upstream yields a
// snapshot with empty collections, never an error the engine has to handle.
// The returned error is reserved for programming mistakes (nil client, ...).

type ISnapshotSource interface {
	Snapshot(ctx context.Context) (entities.Snapshot, error)
}
