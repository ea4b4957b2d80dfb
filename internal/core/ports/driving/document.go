package driving

import (
	"context"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

// DocumentService gives read and delete access to stored documents.
type DocumentService interface {
	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// Chunks returns a document's chunks in text order.
	Chunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// Details returns display information for a document.
	Details(ctx context.Context, documentID string) (*DocumentDetails, error)

	// Delete removes a document and its chunks.
	Delete(ctx context.Context, documentID string) error
}

// DocumentDetails is a display summary of a stored document.
type DocumentDetails struct {
	Document     domain.Document
	ChunkCount   int
	TaggedChunks int

	// Rings counts tagged chunks per ring.
	Rings map[domain.Ring]int
}
