package pipeline

import (
	"context"
	"io"
	"strings"
	"time"

	"opencosts-api/core/domain"
)

// mockDiscovery is a mock implementation of the DiscoveryService interface
type mockDiscovery struct {
	discoverFunc func(ctx context.Context, terms []string) ([]domain.DiscoveredModel, error)
}

func (m *mockDiscovery) Discover(ctx context.Context, terms []string) ([]domain.DiscoveredModel, error) {
	if m.discoverFunc != nil {
		return m.discoverFunc(ctx, terms)
	}
	return nil, nil
}

// mockExpansion is a mock implementation of the ExpansionService interface
type mockExpansion struct {
	expandFunc func(ctx context.Context, models []domain.DiscoveredModel) []domain.ProviderRow
	calls      int
}

func (m *mockExpansion) Expand(ctx context.Context, models []domain.DiscoveredModel) []domain.ProviderRow {
	m.calls++
	if m.expandFunc != nil {
		return m.expandFunc(ctx, models)
	}
	return nil
}

// mockMetrics records run observations
type mockMetrics struct {
	runs   int
	models int
	rows   int
	err    error
}

func (m *mockMetrics) ObserveFetch(kind string, err error, d time.Duration) {}

func (m *mockMetrics) ObserveRun(models, rows int, err error, d time.Duration) {
	m.runs++
	m.models = models
	m.rows = rows
	m.err = err
}

// mockLogger discards log entries
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// stubResponse is a canned Response
type stubResponse struct {
	status int
	body   string
}

func (r *stubResponse) StatusCode() int { return r.status }

func (r *stubResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(r.body)) }

func (r *stubResponse) Header(key string) string { return "" }
