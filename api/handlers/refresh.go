// ABOUTME: Refresh handler for the Huma API
// ABOUTME: Runs the pipeline on demand and publishes the snapshot and CSV file

package handlers

import (
	"context"
	"net/http"

	"opencosts-api/api/dto/mappers"
	"opencosts-api/api/dto/responses"
	"opencosts-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// RefreshHandler handles on-demand refreshes
type RefreshHandler struct {
	refreshService interfaces.RefreshService
}

// NewRefreshHandler creates a new refresh handler
func NewRefreshHandler(refreshService interfaces.RefreshService) *RefreshHandler {
	return &RefreshHandler{refreshService: refreshService}
}

// RegisterRoutes registers the refresh route
func (h *RefreshHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refreshData",
		Method:      http.MethodPost,
		Path:        "/refresh-data",
		Summary:     "Refresh pricing data",
		Description: "Runs discovery and provider expansion with the configured search terms, stores the snapshot and rewrites the CSV export",
		Tags:        []string{"Pricing"},
	}, h.RefreshData)
}

// RefreshDataOutput defines the output for the RefreshData operation
type RefreshDataOutput struct {
	Body responses.RefreshResponse
}

// RefreshData handles the POST /refresh-data endpoint
func (h *RefreshHandler) RefreshData(ctx context.Context, input *struct{}) (*RefreshDataOutput, error) {
	result, err := h.refreshService.Refresh(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RefreshDataOutput{Body: *mappers.ToRefreshResponse(result)}, nil
}
