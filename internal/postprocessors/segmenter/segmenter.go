// Package segmenter splits normalised radar text into one chunk per
// numbered technology entry.
//
// An entry starts where an ordinal and title line ("12. Dependency pruning")
// is followed by a line holding the entry's ring ("Trial").
//
// Spans longer than the chunk size are subdivided by the recursive
// splitter from the chunker package.
package segmenter

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/logger"
	"github.com/custodia-labs/radarchunk/internal/postprocessors/chunker"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// boundaryPattern matches the start of an entry.
var boundaryPattern = regexp.MustCompile(`\d{1,3}\. [^"\n]+\n(?:Adopt|Trial|Hold|Assess)`)

// Processor segments document content at entry boundaries.
// It implements the PostProcessor interface.
type Processor struct {
	splitter *chunker.Splitter
	log      *logger.Logger
}

// New creates a segmenter. Options configure the fallback splitter.
func New(log *logger.Logger, opts ...chunker.Option) *Processor {
	opts = append([]chunker.Option{chunker.WithLogger(log)}, opts...)
	return &Processor{
		splitter: chunker.NewSplitter(opts...),
		log:      log,
	}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "segmenter"
}

// Segment splits text at entry boundaries.
// Text before the first boundary becomes a piece of its own. Pieces are
// trimmed, empty pieces dropped, and pieces longer than the chunk size
// subdivided. Text without any boundary is returned unchanged as the
// only piece.
func (p *Processor) Segment(text string) []string {
	bounds := boundaryPattern.FindAllStringIndex(text, -1)
	if len(bounds) == 0 {
		return []string{text}
	}

	starts := make([]int, 0, len(bounds)+1)
	starts = append(starts, 0)
	for _, b := range bounds {
		if b[0] > 0 {
			starts = append(starts, b[0])
		}
	}

	pieces := make([]string, 0, len(starts))
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}

		piece := strings.TrimSpace(text[start:end])
		if piece == "" {
			continue
		}

		if n := utf8.RuneCountInString(piece); n > p.splitter.ChunkSize() {
			sub := p.splitter.Split(piece)
			p.log.Debug("Split oversized segment of %d characters into %d pieces", n, len(sub))
			pieces = append(pieces, sub...)
			continue
		}
		pieces = append(pieces, piece)
	}

	return pieces
}

// Process creates one chunk per segment of the document content.
// Input chunks are ignored; this processor creates new chunks from document content.
func (p *Processor) Process(ctx context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if doc.Content == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	segments := p.Segment(doc.Content)
	p.log.Debug("Segmented %s into %d chunks", doc.URI, len(segments))

	return chunker.NewChunks(doc, segments), nil
}
