package handlers

import (
	"context"

	"opencosts-api/core/domain"
	"opencosts-api/core/errors"
)

type mockRefreshService struct {
	refreshFunc func(ctx context.Context) (*domain.RefreshResult, error)
	calls       int
}

func (m *mockRefreshService) Refresh(ctx context.Context) (*domain.RefreshResult, error) {
	m.calls++
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx)
	}
	return &domain.RefreshResult{Snapshot: &domain.Snapshot{}}, nil
}

type mockSnapshotStorage struct {
	latest *domain.Snapshot
	err    error
}

func (m *mockSnapshotStorage) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	m.latest = snapshot
	return nil
}

func (m *mockSnapshotStorage) Latest(ctx context.Context) (*domain.Snapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.latest == nil {
		return nil, &errors.NotFoundError{Resource: "snapshot", ID: "latest"}
	}
	return m.latest, nil
}

type mockPipeline struct {
	runFunc func(ctx context.Context, terms []string) (*domain.Snapshot, error)
	terms   [][]string
}

func (m *mockPipeline) Run(ctx context.Context, terms []string) (*domain.Snapshot, error) {
	m.terms = append(m.terms, terms)
	if m.runFunc != nil {
		return m.runFunc(ctx, terms)
	}
	return &domain.Snapshot{SearchTerms: terms, Rows: []domain.ProviderRow{}}, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func sonnetRows() []domain.ProviderRow {
	return []domain.ProviderRow{
		{
			ModelName:        "Anthropic: Claude Sonnet 4",
			ModelURL:         "https://openrouter.ai/anthropic/claude-sonnet-4",
			ModelID:          "anthropic/claude-sonnet-4",
			Provider:         "Anthropic",
			ContextLength:    intPtr(200000),
			PriceInputToken:  strPtr("0.000003"),
			PriceOutputToken: strPtr("0.000015"),
			CreationDate:     strPtr("May 22, 2025"),
		},
		{
			ModelName:        "Anthropic: Claude Sonnet 4",
			ModelURL:         "https://openrouter.ai/anthropic/claude-sonnet-4",
			ModelID:          "anthropic/claude-sonnet-4",
			Provider:         "Google Vertex",
			ContextLength:    intPtr(200000),
			PriceInputToken:  strPtr("0.000005"),
			PriceOutputToken: strPtr("0.000025"),
			CreationDate:     strPtr("May 22, 2025"),
		},
	}
}
