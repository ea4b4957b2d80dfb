package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService reads and deletes stored radar documents.
type DocumentService struct {
	store driven.ChunkStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.ChunkStore) *DocumentService {
	return &DocumentService{store: store}
}

// List returns all stored documents.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.store.ListDocuments(ctx)
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	if documentID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.GetDocument(ctx, documentID)
}

// Chunks returns a document's chunks in text order.
func (s *DocumentService) Chunks(ctx context.Context, documentID string) ([]domain.Chunk, error) {
	// Verify document exists
	if _, err := s.Get(ctx, documentID); err != nil {
		return nil, err
	}
	return s.store.GetChunks(ctx, documentID)
}

// Details summarises a document and how its chunks were tagged.
func (s *DocumentService) Details(ctx context.Context, documentID string) (*driving.DocumentDetails, error) {
	doc, err := s.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	chunks, err := s.store.GetChunks(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("get chunks: %w", err)
	}

	details := &driving.DocumentDetails{
		Document:   *doc,
		ChunkCount: len(chunks),
		Rings:      make(map[domain.Ring]int),
	}
	for i := range chunks {
		if tag := chunks[i].Structure; tag != nil {
			details.TaggedChunks++
			details.Rings[tag.Ring]++
		}
	}

	return details, nil
}

// Delete removes a document and its chunks.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	if documentID == "" {
		return domain.ErrInvalidInput
	}
	return s.store.DeleteDocument(ctx, documentID)
}
