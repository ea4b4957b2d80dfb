package driven

import (
	"context"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

// TextExtractor converts a PDF file into plain text plus provenance.
// Provenance must carry domain.ProvenanceSource and, when known,
// domain.ProvenanceCreationDate.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (*domain.RawDocument, error)
}

// DocumentSource lists the files to ingest.
type DocumentSource interface {
	// Root returns the location being listed.
	Root() string

	// List returns the paths of valid radar PDFs.
	// Returns domain.ErrNoDocuments when the location holds no PDFs at all.
	List(ctx context.Context) ([]string, error)

	// Accept reports whether a single path would be listed.
	Accept(path string) error
}
