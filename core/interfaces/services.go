// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the catalog client and the pipeline stages

package interfaces

import (
	"context"

	"opencosts-api/core/domain"
)

// CatalogClient issues read-only requests against the catalog service.
type CatalogClient interface {
	// ListModels returns every model record in the catalog
	ListModels(ctx context.Context) ([]domain.RawRecord, error)

	// ListEndpoints returns the provider endpoint records of one model
	ListEndpoints(ctx context.Context, canonicalSlug string) ([]domain.RawRecord, error)

	// FetchCreationDate scrapes the model detail page; nil when the page has no date
	FetchCreationDate(ctx context.Context, canonicalSlug string) (*string, error)

	// DetailURL returns the website URL of a model
	DetailURL(model domain.DiscoveredModel) string
}

// DiscoveryService finds catalog models matching search terms
type DiscoveryService interface {
	Discover(ctx context.Context, terms []string) ([]domain.DiscoveredModel, error)
}

// ExpansionService flattens discovered models into provider rows
type ExpansionService interface {
	Expand(ctx context.Context, models []domain.DiscoveredModel) []domain.ProviderRow
}

// PipelineService runs discovery and expansion end to end
type PipelineService interface {
	Run(ctx context.Context, terms []string) (*domain.Snapshot, error)
}

// RefreshService runs the pipeline with the configured terms and publishes the outcome
type RefreshService interface {
	Refresh(ctx context.Context) (*domain.RefreshResult, error)
}

// TermsSource supplies the search terms for a run
type TermsSource func() ([]string, error)
