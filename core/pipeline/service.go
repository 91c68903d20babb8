// ABOUTME: Pipeline service runs discovery and provider expansion end to end
// ABOUTME: Produces a timestamped snapshot and records run metrics

package pipeline

import (
	"context"
	"time"

	"opencosts-api/core/domain"
	"opencosts-api/core/interfaces"
)

// Service implements interfaces.PipelineService
type Service struct {
	discovery interfaces.DiscoveryService
	expansion interfaces.ExpansionService
	deps      interfaces.Dependencies
	now       func() time.Time
}

// NewService creates a new pipeline service
func NewService(discovery interfaces.DiscoveryService, expansion interfaces.ExpansionService, deps interfaces.Dependencies) *Service {
	return &Service{
		discovery: discovery,
		expansion: expansion,
		deps:      deps,
		now:       time.Now,
	}
}

// Run discovers the models matching terms and expands them into provider rows.
// Only a failed model listing aborts the run.
func (s *Service) Run(ctx context.Context, terms []string) (*domain.Snapshot, error) {
	start := s.now()

	models, err := s.discovery.Discover(ctx, terms)
	if err != nil {
		s.observe(0, 0, err, start)
		if s.deps.Logger != nil {
			s.deps.Logger.Error("Pipeline run failed", map[string]interface{}{
				"error": err.Error(),
				"terms": terms,
			})
		}
		return nil, err
	}

	rows := []domain.ProviderRow{}
	if len(models) > 0 {
		rows = s.expansion.Expand(ctx, models)
	}

	snapshot := &domain.Snapshot{
		GeneratedAt: start.UTC(),
		SearchTerms: append([]string(nil), terms...),
		Models:      models,
		Rows:        rows,
	}

	s.observe(len(models), len(rows), nil, start)
	if s.deps.Logger != nil {
		s.deps.Logger.Info("Pipeline run completed", map[string]interface{}{
			"models_found":  len(models),
			"provider_rows": len(rows),
			"duration_ms":   s.now().Sub(start).Milliseconds(),
		})
	}

	return snapshot, nil
}

func (s *Service) observe(models, rows int, err error, start time.Time) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveRun(models, rows, err, s.now().Sub(start))
	}
}
