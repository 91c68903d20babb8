// ABOUTME: Discovery service finds catalog models matching search terms
// ABOUTME: Filters free variants, derives slugs, dedupes by id and enriches creation dates concurrently

package discovery

import (
	"context"
	"strings"

	"opencosts-api/core/domain"
	coreerrors "opencosts-api/core/errors"
	"opencosts-api/core/interfaces"
	"opencosts-api/core/matcher"
	"opencosts-api/core/workers"
)

// Service implements interfaces.DiscoveryService
type Service struct {
	catalog interfaces.CatalogClient
	deps    interfaces.Dependencies
	width   int
}

// NewService creates a discovery service. A width below 1 uses workers.DefaultPoolWidth.
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

// Discover lists the catalog once and returns the non-free models whose display name
// matches any term, in catalog order, deduplicated by model id and enriched with
// creation dates. Only a failed model listing is returned as an error.
func (s *Service) Discover(ctx context.Context, terms []string) ([]domain.DiscoveredModel, error) {
	records, err := s.catalog.ListModels(ctx)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to list catalog models")
	}

	models := s.selectModels(records, terms)
	if len(models) == 0 {
		return []domain.DiscoveredModel{}, nil
	}

	enriched := workers.MapOrdered(ctx, s.width, models, s.enrich)

	s.logInfo("Discovery completed", map[string]interface{}{
		"catalog_models": len(records),
		"matched_models": len(enriched),
	})

	return enriched, nil
}

// selectModels applies the free/match filters, slug derivation and first-wins dedupe
func (s *Service) selectModels(records []domain.RawRecord, terms []string) []domain.DiscoveredModel {
	models := make([]domain.DiscoveredModel, 0)
	seen := make(map[string]struct{})

	for _, record := range records {
		if matcher.IsFree(record) {
			continue
		}
		name := record.String("name")
		if !matcher.MatchesAny(name, terms) {
			continue
		}

		id := record.String("id")
		if id == "" {
			s.logWarn("Skipping catalog record without id", map[string]interface{}{
				"name": name,
			})
			continue
		}

		slug := DeriveSlug(record)
		if !strings.Contains(slug, "/") {
			s.logWarn("Skipping catalog record with malformed slug", map[string]interface{}{
				"id":   id,
				"slug": slug,
			})
			continue
		}

		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		models = append(models, domain.DiscoveredModel{
			DisplayName:   name,
			ModelID:       id,
			CanonicalSlug: slug,
		})
	}

	return models
}

// enrich fetches the creation date of one model; failures leave it absent
func (s *Service) enrich(ctx context.Context, model domain.DiscoveredModel) domain.DiscoveredModel {
	date, err := s.catalog.FetchCreationDate(ctx, model.CanonicalSlug)
	if err != nil {
		s.logWarn("Could not fetch creation date", map[string]interface{}{
			"model": model.ModelID,
			"slug":  model.CanonicalSlug,
			"error": err.Error(),
		})
		return model.WithCreationDate(nil)
	}
	return model.WithCreationDate(date)
}

// DeriveSlug returns canonical_slug when set, else the model id up to its first colon.
func DeriveSlug(record domain.RawRecord) string {
	if slug := record.String("canonical_slug"); slug != "" {
		return slug
	}
	slug, _, _ := strings.Cut(record.String("id"), ":")
	return slug
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
