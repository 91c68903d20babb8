package refresh

import (
	"context"
	"sync"

	"opencosts-api/core/domain"
)

type mockPipeline struct {
	runFunc func(ctx context.Context, terms []string) (*domain.Snapshot, error)
	terms   [][]string
}

func (m *mockPipeline) Run(ctx context.Context, terms []string) (*domain.Snapshot, error) {
	m.terms = append(m.terms, terms)
	if m.runFunc != nil {
		return m.runFunc(ctx, terms)
	}
	return &domain.Snapshot{SearchTerms: terms}, nil
}

type mockStorage struct {
	mu      sync.Mutex
	saved   []*domain.Snapshot
	saveErr error
}

func (m *mockStorage) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, snapshot)
	return nil
}

func (m *mockStorage) Latest(ctx context.Context) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

type mockLogger struct {
	infos []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.infos = append(m.infos, msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
