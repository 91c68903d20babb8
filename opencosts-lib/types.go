// ABOUTME: Public types for the OpenCosts library API
// ABOUTME: Aliases of the core domain models so callers never import internal packages

package opencosts

import "opencosts-api/core/domain"

// Model is a catalog model that matched a search term
type Model = domain.DiscoveredModel

// Row is one (model, hosting provider) pairing with pricing and performance data
type Row = domain.ProviderRow

// Snapshot is the outcome of one complete run
type Snapshot = domain.Snapshot

// AuthorGroup groups models under the author derived from their display name
type AuthorGroup = domain.AuthorGroup

// ModelGroup lists the provider rows of one model
type ModelGroup = domain.ModelGroup

// PriceSummary holds average token prices across a model's providers
type PriceSummary = domain.PriceSummary
