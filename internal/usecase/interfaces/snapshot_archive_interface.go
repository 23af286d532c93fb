package interfaces

import (
	"context"

	"sarb_ai/internal/domain/entities"
)

// ISnapshotArchive abstracts DynamoDB persistence for the latest snapshot.
//
// The archive is outside the engine's correctness contract: it is written
// fire-and-forget at shutdown and read only as a last resort when every
// provider fetch fails.

type ISnapshotArchive interface {
	SaveLatest(ctx context.Context, snap entities.Snapshot) error
	LoadLatest(ctx context.Context) (entities.Snapshot, bool, error)
}
