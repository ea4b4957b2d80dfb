package driven

import (
	"context"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

// ChunkStore persists documents and their chunks for the indexing layer.
// Chunks of one document may carry different metadata key sets.
type ChunkStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks replaces all chunks of the given document.
	SaveChunks(ctx context.Context, documentID string, chunks []domain.Chunk) error

	// ReplaceDocument stores doc and replaces its chunks as one write:
	// on error neither the document nor its chunks change.
	ReplaceDocument(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetChunks retrieves all chunks for a document, ordered by position.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// DeleteDocument removes a document and its chunks.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns all stored documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
