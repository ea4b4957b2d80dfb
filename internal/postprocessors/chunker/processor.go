// Package chunker provides size-bounded recursive text splitting and a
// post-processor that chunks whole documents with it.
package chunker

import (
	"context"

	"github.com/google/uuid"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor splits document content into size-bounded chunks.
// It implements the PostProcessor interface.
type Processor struct {
	splitter *Splitter
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	return &Processor{splitter: NewSplitter(opts...)}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Splitter returns the underlying splitter.
func (p *Processor) Splitter() *Splitter {
	return p.splitter
}

// Process splits the document content into chunks.
// Input chunks are ignored; this processor creates new chunks from document content.
func (p *Processor) Process(ctx context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if doc.Content == "" {
		// Empty content produces no chunks
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return NewChunks(doc, p.splitter.Split(doc.Content)), nil
}

// NewChunks wraps texts as chunks of doc, numbered in order.
func NewChunks(doc *domain.Document, texts []string) []domain.Chunk {
	chunks := make([]domain.Chunk, 0, len(texts))
	for i, text := range texts {
		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Content:    text,
			Position:   i,
			Metadata:   doc.Metadata,
		})
	}
	return chunks
}
