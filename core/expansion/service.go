// ABOUTME: Expansion service flattens discovered models into one row per hosting provider
// ABOUTME: Endpoint lookups fan out concurrently and rows are reassembled in model order

package expansion

import (
	"context"

	"opencosts-api/core/domain"
	"opencosts-api/core/interfaces"
	"opencosts-api/core/workers"
)

// Service implements interfaces.ExpansionService
type Service struct {
	catalog interfaces.CatalogClient
	deps    interfaces.Dependencies
	width   int
}

// NewService creates an expansion service. A width below 1 uses workers.DefaultPoolWidth.
func NewService(catalog interfaces.CatalogClient, deps interfaces.Dependencies, width int) *Service {
	if width < 1 {
		width = workers.DefaultPoolWidth
	}
	return &Service{
		catalog: catalog,
		deps:    deps,
		width:   width,
	}
}

// Expand lists the endpoints of every model and returns the provider rows in input
// model order, endpoint order within a model. A model whose endpoints cannot be
// listed contributes no rows.
func (s *Service) Expand(ctx context.Context, models []domain.DiscoveredModel) []domain.ProviderRow {
	batches := workers.MapOrdered(ctx, s.width, models, s.expandModel)

	total := 0
	for _, batch := range batches {
		total += len(batch)
	}
	rows := make([]domain.ProviderRow, 0, total)
	for _, batch := range batches {
		rows = append(rows, batch...)
	}

	return rows
}

func (s *Service) expandModel(ctx context.Context, model domain.DiscoveredModel) []domain.ProviderRow {
	endpoints, err := s.catalog.ListEndpoints(ctx, model.CanonicalSlug)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Could not list provider endpoints", map[string]interface{}{
				"model": model.ModelID,
				"slug":  model.CanonicalSlug,
				"error": err.Error(),
			})
		}
		return nil
	}

	modelURL := s.catalog.DetailURL(model)
	rows := make([]domain.ProviderRow, 0, len(endpoints))
	for _, endpoint := range endpoints {
		if row, ok := BuildRow(model, modelURL, endpoint); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// BuildRow normalizes one endpoint record. It reports false when the endpoint
// carries no provider name.
func BuildRow(model domain.DiscoveredModel, modelURL string, endpoint domain.RawRecord) (domain.ProviderRow, bool) {
	provider := endpoint.String("provider_name")
	if provider == "" {
		return domain.ProviderRow{}, false
	}

	pricing := endpoint.Object(PricingField)

	return domain.ProviderRow{
		ModelName:        model.DisplayName,
		ModelURL:         modelURL,
		ModelID:          model.ModelID,
		Provider:         provider,
		ContextLength:    ContextLength(endpoint),
		PriceInputToken:  OpaqueString(pricing, PromptField),
		PriceOutputToken: OpaqueString(pricing, CompletionField),
		Latency:          OptionalFloat(endpoint, "latency"),
		Throughput:       OptionalFloat(endpoint, "throughput"),
		CreationDate:     model.CreationDate,
	}, true
}
