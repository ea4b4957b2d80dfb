package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
)

// radarText is extracted text of a tiny radar with one entry.
const radarText = "Techniques\nAdopt\n1. 1% canary\nTrial\nAssess\nHold\n\n" +
	"1. 1% canary\nAdopt\nCanary body.\n© Thoughtworks, Inc. All Rights Reserved.\n3\n"

// mockSource implements driven.DocumentSource.
type mockSource struct {
	root    string
	paths   []string
	listErr error
	reject  map[string]error
}

var _ driven.DocumentSource = (*mockSource)(nil)

func (m *mockSource) Root() string { return m.root }

func (m *mockSource) List(_ context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.paths, nil
}

func (m *mockSource) Accept(path string) error {
	return m.reject[path]
}

// mockExtractor implements driven.TextExtractor with canned text.
type mockExtractor struct {
	mu    sync.Mutex
	texts map[string]string
	errs  map[string]error
	calls int
}

var _ driven.TextExtractor = (*mockExtractor)(nil)

func (m *mockExtractor) Extract(_ context.Context, path string) (*domain.RawDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if err := m.errs[path]; err != nil {
		return nil, err
	}
	text, ok := m.texts[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return &domain.RawDocument{
		Text: text,
		Provenance: map[string]any{
			domain.ProvenanceSource:       path,
			domain.ProvenanceCreationDate: "2025-04-01T00:00:00Z",
		},
	}, nil
}

// failingPipeline implements driven.PostProcessorPipeline and always fails.
type failingPipeline struct {
	err error
}

func (f *failingPipeline) Process(_ context.Context, _ *domain.Document) ([]domain.Chunk, error) {
	return nil, f.err
}
