// ABOUTME: Storage interfaces for persisting pipeline outcomes
// ABOUTME: Defines contracts for the snapshot kept by the web layer between refreshes

package interfaces

import (
	"context"

	"opencosts-api/core/domain"
)

// SnapshotStorage defines the interface for snapshot persistence
type SnapshotStorage interface {
	// Save replaces the latest snapshot
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Latest returns the most recently saved snapshot
	Latest(ctx context.Context) (*domain.Snapshot, error)
}
