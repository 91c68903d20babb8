// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"opencosts-api/api/dto/responses"
	"opencosts-api/core/domain"
	"opencosts-api/core/export"
)

// RefreshSucceeded is the message of a successful refresh
const RefreshSucceeded = "Data refreshed successfully"

// ToRefreshResponse converts a refresh result to a RefreshResponse DTO
func ToRefreshResponse(result *domain.RefreshResult) *responses.RefreshResponse {
	if result == nil || result.Snapshot == nil {
		return nil
	}

	return &responses.RefreshResponse{
		Message:      RefreshSucceeded,
		ModelsFound:  len(result.Snapshot.Models),
		ProviderRows: len(result.Snapshot.Rows),
		OutputFile:   result.OutputFile,
		GeneratedAt:  result.Snapshot.GeneratedAt,
	}
}

// ToRowsResponse converts a snapshot to a RowsResponse DTO
func ToRowsResponse(snapshot *domain.Snapshot) *responses.RowsResponse {
	if snapshot == nil {
		return nil
	}

	terms := snapshot.SearchTerms
	if terms == nil {
		terms = []string{}
	}

	return &responses.RowsResponse{
		GeneratedAt: snapshot.GeneratedAt,
		SearchTerms: terms,
		Count:       len(snapshot.Rows),
		Rows:        export.ToProviderEntries(snapshot.Rows),
	}
}
