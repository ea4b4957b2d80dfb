package driving

import (
	"context"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

// IngestService turns radar PDFs into tagged chunks.
type IngestService interface {
	// IngestFolder processes every radar PDF of the configured source
	// and persists the results.
	IngestFolder(ctx context.Context) (*IngestReport, error)

	// IngestFile processes and persists a single PDF.
	IngestFile(ctx context.Context, path string) (*IngestResult, error)

	// ProcessFile extracts and chunks a single PDF without persisting it.
	ProcessFile(ctx context.Context, path string) (*IngestResult, error)

	// Process runs the chunking pipeline on an already extracted document
	// without persisting anything.
	Process(ctx context.Context, raw *domain.RawDocument) (*IngestResult, error)
}

// IngestResult is the outcome for one document.
type IngestResult struct {
	Document domain.Document
	Chunks   []domain.Chunk
}

// TaggedChunks returns the number of chunks carrying a quadrant and ring.
func (r *IngestResult) TaggedChunks() int {
	n := 0
	for i := range r.Chunks {
		if r.Chunks[i].IsTagged() {
			n++
		}
	}
	return n
}

// IngestReport summarises a folder ingestion.
type IngestReport struct {
	// Documents is the count of documents stored.
	Documents int

	// Chunks is the total count of chunks stored.
	Chunks int

	// TaggedChunks is how many chunks carry a quadrant and ring.
	TaggedChunks int

	// Failures maps a file path to the reason it was skipped.
	Failures map[string]error
}

// ErrorCount returns the number of files that failed.
func (r *IngestReport) ErrorCount() int {
	return len(r.Failures)
}
