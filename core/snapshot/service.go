// ABOUTME: Snapshot service keeps the latest refresh outcome for the web layer
// ABOUTME: Stored as JSON in the configured cache backend under a fixed key

package snapshot

import (
	"context"
	"encoding/json"
	"time"

	"opencosts-api/core/domain"
	"opencosts-api/core/errors"
	"opencosts-api/core/interfaces"
)

// LatestKey is the cache key holding the most recent snapshot
const LatestKey = "snapshot:latest"

// Service implements interfaces.SnapshotStorage on top of interfaces.Cache
type Service struct {
	deps interfaces.Dependencies
	ttl  time.Duration
}

// NewService creates a snapshot service. A zero ttl keeps the snapshot indefinitely.
func NewService(deps interfaces.Dependencies, ttl time.Duration) *Service {
	return &Service{
		deps: deps,
		ttl:  ttl,
	}
}

// Save replaces the latest snapshot
func (s *Service) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return &errors.ValidationError{Field: "snapshot", Message: "snapshot is required"}
	}
	if s.deps.Cache == nil {
		return errors.WrapError(errNoCache, "failed to save snapshot")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.WrapError(err, "failed to encode snapshot")
	}
	if err := s.deps.Cache.Set(ctx, LatestKey, data, s.ttl); err != nil {
		return errors.WrapError(err, "failed to save snapshot")
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Snapshot saved", map[string]interface{}{
			"rows":  len(snapshot.Rows),
			"bytes": len(data),
		})
	}
	return nil
}

// Latest returns the most recently saved snapshot, or a NotFoundError when no
// refresh has been stored yet.
func (s *Service) Latest(ctx context.Context) (*domain.Snapshot, error) {
	if s.deps.Cache == nil {
		return nil, &errors.NotFoundError{Resource: "snapshot", ID: LatestKey}
	}

	data, err := s.deps.Cache.Get(ctx, LatestKey)
	if err != nil || data == nil {
		return nil, &errors.NotFoundError{Resource: "snapshot", ID: LatestKey}
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Discarding unreadable snapshot", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, &errors.NotFoundError{Resource: "snapshot", ID: LatestKey}
	}
	return &snapshot, nil
}
