package stats

import (
	"context"

	"github.com/prologistix/backend/vtc"
)

// SnapshotSource provides the normalized community statistics
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*vtc.Snapshot, error)
}
