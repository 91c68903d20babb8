package catalog

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"opencosts-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockMetrics records fetch observations
type mockMetrics struct {
	mu      sync.Mutex
	fetches []string
	errors  int
}

func (m *mockMetrics) ObserveFetch(kind string, err error, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches = append(m.fetches, kind)
	if err != nil {
		m.errors++
	}
}

func (m *mockMetrics) ObserveRun(models, rows int, err error, _ time.Duration) {}
