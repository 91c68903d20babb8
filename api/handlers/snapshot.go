// ABOUTME: Snapshot handlers for the Huma API
// ABOUTME: Serve the latest refresh as a CSV download or as flat JSON rows

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"opencosts-api/api/dto/mappers"
	"opencosts-api/api/dto/responses"
	"opencosts-api/core/export"
	"opencosts-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// DefaultCSVFilename names the CSV download
const DefaultCSVFilename = "openrouter_models_providers.csv"

// SnapshotHandler serves the latest stored snapshot
type SnapshotHandler struct {
	storage             interfaces.SnapshotStorage
	filename            string
	includeCreationDate bool
}

// NewSnapshotHandler creates a new snapshot handler. An empty filename uses DefaultCSVFilename.
func NewSnapshotHandler(storage interfaces.SnapshotStorage, filename string, includeCreationDate bool) *SnapshotHandler {
	if filename == "" {
		filename = DefaultCSVFilename
	}
	return &SnapshotHandler{
		storage:             storage,
		filename:            filename,
		includeCreationDate: includeCreationDate,
	}
}

// RegisterRoutes registers the snapshot routes
func (h *SnapshotHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "downloadCSV",
		Method:      http.MethodGet,
		Path:        "/csv",
		Summary:     "Download the latest CSV export",
		Description: "Returns the provider rows of the latest refresh as CSV. Responds 404 until a refresh has completed.",
		Tags:        []string{"Pricing"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "CSV export",
				Content: map[string]*huma.MediaType{
					"text/csv": {},
				},
			},
		},
	}, h.DownloadCSV)

	huma.Register(api, huma.Operation{
		OperationID: "listRows",
		Method:      http.MethodGet,
		Path:        "/rows",
		Summary:     "List the latest provider rows",
		Description: "Returns the provider rows of the latest refresh keyed by CSV column name",
		Tags:        []string{"Pricing"},
	}, h.ListRows)
}

// DownloadCSVOutput defines the output for the DownloadCSV operation
type DownloadCSVOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// DownloadCSV handles the GET /csv endpoint
func (h *SnapshotHandler) DownloadCSV(ctx context.Context, input *struct{}) (*DownloadCSVOutput, error) {
	snapshot, err := h.storage.Latest(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, snapshot.Rows, export.WithCreationDate(h.includeCreationDate)); err != nil {
		return nil, toHumaError(err)
	}

	return &DownloadCSVOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", h.filename),
		Body:               buf.Bytes(),
	}, nil
}

// ListRowsOutput defines the output for the ListRows operation
type ListRowsOutput struct {
	Body responses.RowsResponse
}

// ListRows handles the GET /rows endpoint
func (h *SnapshotHandler) ListRows(ctx context.Context, input *struct{}) (*ListRowsOutput, error) {
	snapshot, err := h.storage.Latest(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListRowsOutput{Body: *mappers.ToRowsResponse(snapshot)}, nil
}
