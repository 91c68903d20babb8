// ABOUTME: Refresh service runs the pipeline with configured terms and publishes the result
// ABOUTME: Publishing means saving the snapshot and rewriting the CSV export file

package refresh

import (
	"context"
	"fmt"

	"opencosts-api/core/domain"
	"opencosts-api/core/errors"
	"opencosts-api/core/export"
	"opencosts-api/core/interfaces"
)

// Options configures what a refresh publishes
type Options struct {
	// Terms supplies the search terms; required
	Terms interfaces.TermsSource

	// CSVPath is where the CSV export is written; empty disables the file
	CSVPath string

	// IncludeCreationDate adds the creation date column to the CSV file
	IncludeCreationDate bool
}

// Service implements interfaces.RefreshService
type Service struct {
	pipeline interfaces.PipelineService
	storage  interfaces.SnapshotStorage
	deps     interfaces.Dependencies
	opts     Options
}

// NewService creates a refresh service. storage may be nil when snapshots are disabled.
func NewService(pipeline interfaces.PipelineService, storage interfaces.SnapshotStorage, deps interfaces.Dependencies, opts Options) *Service {
	return &Service{
		pipeline: pipeline,
		storage:  storage,
		deps:     deps,
		opts:     opts,
	}
}

// Refresh runs the pipeline once. A snapshot that could not be stored or written
// fails the refresh; the rows are still returned so callers can report them.
func (s *Service) Refresh(ctx context.Context) (*domain.RefreshResult, error) {
	if s.opts.Terms == nil {
		return nil, &errors.ValidationError{Field: "terms", Message: "no search term source configured"}
	}
	terms, err := s.opts.Terms()
	if err != nil {
		return nil, errors.WrapError(err, "failed to load search terms")
	}

	snapshot, err := s.pipeline.Run(ctx, terms)
	if err != nil {
		return nil, err
	}

	result := &domain.RefreshResult{Snapshot: snapshot}

	if s.storage != nil {
		if err := s.storage.Save(ctx, snapshot); err != nil {
			return result, err
		}
	}

	if s.opts.CSVPath != "" {
		err := export.WriteCSVFile(s.opts.CSVPath, snapshot.Rows, export.WithCreationDate(s.opts.IncludeCreationDate))
		if err != nil {
			return result, fmt.Errorf("failed to write %s: %w", s.opts.CSVPath, err)
		}
		result.OutputFile = s.opts.CSVPath
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Refresh published", map[string]interface{}{
			"models_found":  len(snapshot.Models),
			"provider_rows": len(snapshot.Rows),
			"output_file":   result.OutputFile,
		})
	}

	return result, nil
}
