package driven

import (
	"context"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

// Normaliser transforms raw extracted text into a clean document.
type Normaliser interface {
	// Name returns the normaliser name for logging.
	Name() string

	// Normalise strips layout artefacts from the raw text.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult carries the cleaned document with its identity, content
// and provenance set. Chunks come later from the pipeline.
type NormaliseResult struct {
	Document domain.Document
}
