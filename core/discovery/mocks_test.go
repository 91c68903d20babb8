package discovery

import (
	"context"
	"sync"

	"opencosts-api/core/domain"
)

// mockCatalog is a mock implementation of the CatalogClient interface
type mockCatalog struct {
	listModelsFunc        func(ctx context.Context) ([]domain.RawRecord, error)
	listEndpointsFunc     func(ctx context.Context, slug string) ([]domain.RawRecord, error)
	fetchCreationDateFunc func(ctx context.Context, slug string) (*string, error)

	mu        sync.Mutex
	calls     []string
	dateCalls int
}

func (m *mockCatalog) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockCatalog) ListModels(ctx context.Context) ([]domain.RawRecord, error) {
	m.record("models")
	if m.listModelsFunc != nil {
		return m.listModelsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalog) ListEndpoints(ctx context.Context, slug string) ([]domain.RawRecord, error) {
	m.record("endpoints:" + slug)
	if m.listEndpointsFunc != nil {
		return m.listEndpointsFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockCatalog) FetchCreationDate(ctx context.Context, slug string) (*string, error) {
	m.record("detail:" + slug)
	m.mu.Lock()
	m.dateCalls++
	m.mu.Unlock()
	if m.fetchCreationDateFunc != nil {
		return m.fetchCreationDateFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockCatalog) DetailURL(model domain.DiscoveredModel) string {
	return model.DetailURL("https://catalog.test")
}

// mockLogger collects log entries by level
type mockLogger struct {
	mu    sync.Mutex
	warns []string
	infos []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, msg)
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
