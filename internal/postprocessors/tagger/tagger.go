// Package tagger attaches document metadata and structural tags to chunks.
package tagger

import (
	"context"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/logger"
	"github.com/custodia-labs/radarchunk/internal/radar/metadata"
	"github.com/custodia-labs/radarchunk/internal/radar/structure"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Stage names.
const (
	NameTagger     = "tagger"
	NameProvenance = "provenance"
)

// Processor stamps document metadata on each incoming chunk. Chunk text
// and order are left untouched.
//
// The full tagger composes title, volume and period and looks every chunk
// up in the document's structure map. The provenance variant only carries
// the creation date and filename and never sets a structural tag.
type Processor struct {
	name      string
	period    string
	extractor *structure.Extractor
	log       *logger.Logger
}

// New creates a tagger using period for every document.
// An empty period falls back to domain.DefaultPeriod.
func New(period string, log *logger.Logger) *Processor {
	if period == "" {
		period = domain.DefaultPeriod
	}
	return &Processor{
		name:      NameTagger,
		period:    period,
		extractor: structure.New(log),
		log:       log,
	}
}

// NewProvenance creates the provenance-only variant.
func NewProvenance(log *logger.Logger) *Processor {
	return &Processor{name: NameProvenance, log: log}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return p.name
}

// Process sets doc.Metadata and returns the annotated chunks.
func (p *Processor) Process(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var structureMap domain.StructureMap
	if p.extractor == nil {
		doc.Metadata = metadata.FromProvenance(doc.Provenance)
	} else {
		doc.Metadata = metadata.Compose(doc.Provenance, p.period)
		structureMap = p.extractor.Extract(doc.Content)
	}

	out := metadata.Annotate(chunks, doc.Metadata, structureMap)

	tagged := 0
	for i := range out {
		out[i].DocumentID = doc.ID
		if out[i].IsTagged() {
			tagged++
		}
	}

	p.log.Debug("%s: tagged %d of %d chunks of %s (%d entries in structure map)",
		p.name, tagged, len(out), doc.URI, len(structureMap))

	return out, nil
}
