package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"opencosts-api/core/domain"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedSnapshot() *mockSnapshotStorage {
	return &mockSnapshotStorage{latest: &domain.Snapshot{
		GeneratedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		SearchTerms: []string{"Sonnet 4"},
		Rows:        sonnetRows(),
	}}
}

func TestSnapshotHandler_DownloadCSV(t *testing.T) {
	_, api := humatest.New(t)
	NewSnapshotHandler(storedSnapshot(), "", true).RegisterRoutes(api)

	resp := api.Get("/csv")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="openrouter_models_providers.csv"`, resp.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(resp.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Model name,Model URL,OpenRouter model ID,Provider,Context length,Price/input token,Price/output token,Latency,Throughput,Creation date", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Anthropic: Claude Sonnet 4,"))
	assert.Contains(t, lines[2], "Google Vertex")
}

func TestSnapshotHandler_DownloadCSV_WithoutCreationDate(t *testing.T) {
	_, api := humatest.New(t)
	NewSnapshotHandler(storedSnapshot(), "prices.csv", false).RegisterRoutes(api)

	resp := api.Get("/csv")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Contains(t, resp.Header().Get("Content-Disposition"), `filename="prices.csv"`)
	assert.NotContains(t, resp.Body.String(), "Creation date")
}

func TestSnapshotHandler_DownloadCSV_NoRefreshYet(t *testing.T) {
	_, api := humatest.New(t)
	NewSnapshotHandler(&mockSnapshotStorage{}, "", true).RegisterRoutes(api)

	resp := api.Get("/csv")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSnapshotHandler_DownloadCSV_StorageFailure(t *testing.T) {
	_, api := humatest.New(t)
	NewSnapshotHandler(&mockSnapshotStorage{err: fmt.Errorf("redis: connection refused")}, "", true).RegisterRoutes(api)

	resp := api.Get("/csv")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestSnapshotHandler_ListRows(t *testing.T) {
	_, api := humatest.New(t)
	NewSnapshotHandler(storedSnapshot(), "", true).RegisterRoutes(api)

	resp := api.Get("/rows")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Count       int                      `json:"count"`
		SearchTerms []string                 `json:"search_terms"`
		Rows        []map[string]interface{} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, []string{"Sonnet 4"}, body.SearchTerms)
	assert.Equal(t, "Anthropic", body.Rows[0]["Provider"])
	assert.Equal(t, "200000", body.Rows[0]["Context length"])
	assert.Equal(t, "", body.Rows[0]["Latency"])
}

func TestSnapshotHandler_ListRows_NoRefreshYet(t *testing.T) {
	_, api := humatest.New(t)
	NewSnapshotHandler(&mockSnapshotStorage{}, "", true).RegisterRoutes(api)

	resp := api.Get("/rows")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
