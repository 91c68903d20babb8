// ABOUTME: Snapshot and grouping models produced around a pipeline run
// ABOUTME: Snapshot records one refresh; AuthorGroup is the nested presentation form

package domain

import "time"

// Snapshot is the outcome of one pipeline run.
type Snapshot struct {
	GeneratedAt time.Time         `json:"generated_at"`
	SearchTerms []string          `json:"search_terms"`
	Models      []DiscoveredModel `json:"models"`
	Rows        []ProviderRow     `json:"rows"`
}

// AuthorGroup groups models under the author derived from their display name.
type AuthorGroup struct {
	Name   string       `json:"name"`
	Models []ModelGroup `json:"models"`
}

// ModelGroup lists the provider rows of one model name.
type ModelGroup struct {
	Name      string        `json:"name"`
	URL       string        `json:"url"`
	ID        string        `json:"id"`
	Providers []ProviderRow `json:"providers"`
	Prices    PriceSummary  `json:"prices"`
}

// PriceSummary holds average token prices across providers with usable prices.
// Averages are decimal strings; "0" when no provider qualified.
type PriceSummary struct {
	AverageInputPrice  string `json:"averageInputPrice"`
	AverageOutputPrice string `json:"averageOutputPrice"`
	ProviderCount      int    `json:"providerCount"`
}

// RefreshResult describes one completed refresh
type RefreshResult struct {
	Snapshot *Snapshot

	// OutputFile is the CSV path written, empty when no file was configured
	OutputFile string
}
