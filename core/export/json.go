// ABOUTME: Nested JSON form of provider rows keyed the way dashboard consumers expect
// ABOUTME: Absent or zero optional values are rendered as empty strings

package export

import (
	"opencosts-api/core/aggregator"
	"opencosts-api/core/domain"
)

// ProviderEntry is one provider row with the column names as keys
type ProviderEntry struct {
	ModelName        string `json:"Model name"`
	ModelURL         string `json:"Model URL"`
	ModelID          string `json:"OpenRouter model ID"`
	Provider         string `json:"Provider"`
	ContextLength    string `json:"Context length"`
	PriceInputToken  string `json:"Price/input token"`
	PriceOutputToken string `json:"Price/output token"`
	Latency          string `json:"Latency"`
	Throughput       string `json:"Throughput"`
	CreationDate     string `json:"Creation date"`
}

// ModelEntry lists the providers of one model
type ModelEntry struct {
	Name      string              `json:"name"`
	URL       string              `json:"url"`
	ID        string              `json:"id"`
	Providers []ProviderEntry     `json:"providers"`
	Prices    domain.PriceSummary `json:"prices"`
}

// AuthorEntry lists the models of one author
type AuthorEntry struct {
	Name   string       `json:"name"`
	Models []ModelEntry `json:"models"`
}

// ToProviderEntry renders one row. Zero context lengths and latencies render as "".
func ToProviderEntry(row domain.ProviderRow) ProviderEntry {
	entry := ProviderEntry{
		ModelName:        row.ModelName,
		ModelURL:         row.ModelURL,
		ModelID:          row.ModelID,
		Provider:         row.Provider,
		PriceInputToken:  formatString(row.PriceInputToken),
		PriceOutputToken: formatString(row.PriceOutputToken),
		CreationDate:     formatString(row.CreationDate),
	}
	if row.ContextLength != nil && *row.ContextLength != 0 {
		entry.ContextLength = formatInt(row.ContextLength)
	}
	if row.Latency != nil && *row.Latency != 0 {
		entry.Latency = formatFloat(row.Latency)
	}
	if row.Throughput != nil && *row.Throughput != 0 {
		entry.Throughput = formatFloat(row.Throughput)
	}
	return entry
}

// ToProviderEntries renders rows in order
func ToProviderEntries(rows []domain.ProviderRow) []ProviderEntry {
	entries := make([]ProviderEntry, len(rows))
	for i, row := range rows {
		entries[i] = ToProviderEntry(row)
	}
	return entries
}

// ToAuthorEntries groups rows by author and renders the nested form
func ToAuthorEntries(rows []domain.ProviderRow) []AuthorEntry {
	groups := aggregator.GroupByAuthor(rows)
	authors := make([]AuthorEntry, len(groups))
	for i, group := range groups {
		models := make([]ModelEntry, len(group.Models))
		for j, model := range group.Models {
			models[j] = ModelEntry{
				Name:      model.Name,
				URL:       model.URL,
				ID:        model.ID,
				Providers: ToProviderEntries(model.Providers),
				Prices:    model.Prices,
			}
		}
		authors[i] = AuthorEntry{Name: group.Name, Models: models}
	}
	return authors
}
