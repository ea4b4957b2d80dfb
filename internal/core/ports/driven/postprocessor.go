package driven

import (
	"context"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

// PostProcessor is one stage of chunk production. The radar pipeline runs
// the blip segmenter first and the quadrant/ring tagger after it.
type PostProcessor interface {
	// Name identifies the stage in logs and in the processor registry.
	Name() string

	// Process returns the stage's output chunks. A producing stage is
	// handed nil and emits fresh chunks; a refining stage receives the
	// previous stage's chunks and returns them annotated or reshaped.
	Process(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error)
}

// PostProcessorPipeline turns a normalised document into its final chunks.
type PostProcessorPipeline interface {
	Process(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error)
}
