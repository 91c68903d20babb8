// ABOUTME: Response DTOs for pricing API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import (
	"time"

	"opencosts-api/core/export"
)

// MessageResponse is the service banner
type MessageResponse struct {
	Message string `json:"message" doc:"Service name"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status string `json:"status" doc:"Always 'healthy' while the process serves requests"`
}

// RefreshResponse summarizes a completed refresh
type RefreshResponse struct {
	Message      string    `json:"message" doc:"Outcome description"`
	ModelsFound  int       `json:"models_found" doc:"Number of catalog models matching the search terms"`
	ProviderRows int       `json:"provider_rows" doc:"Number of (model, provider) rows produced"`
	OutputFile   string    `json:"output_file" doc:"CSV file written, empty when file output is disabled"`
	GeneratedAt  time.Time `json:"generated_at" doc:"When the run started"`
}

// RowsResponse lists the rows of the latest snapshot
type RowsResponse struct {
	GeneratedAt time.Time              `json:"generated_at" doc:"When the snapshot run started"`
	SearchTerms []string               `json:"search_terms" doc:"Terms the snapshot was produced with"`
	Count       int                    `json:"count" doc:"Number of rows"`
	Rows        []export.ProviderEntry `json:"rows" doc:"Provider rows keyed by CSV column name"`
}
