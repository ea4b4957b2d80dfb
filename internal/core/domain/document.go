package domain

import "time"

// Flat metadata keys handed to the indexing layer.
const (
	MetaCreationDate = "creation_date"
	MetaFilename     = "filename"
	MetaTitle        = "title"
	MetaVolume       = "volume"
	MetaPeriod       = "period"
	MetaQuadrant     = "quadrant"
	MetaRing         = "ring"
)

// DocumentMetadata is the descriptive metadata of one radar report.
// It is derived once per document and shared by all of its chunks.
type DocumentMetadata struct {
	CreationDate string
	Filename     string
	Title        string
	Volume       string
	Period       string
}

// Document is a radar report after normalisation.
type Document struct {
	// ID is the stable identifier for the document.
	ID string

	// URI is the original location of the PDF.
	URI string

	// Content is the normalised full text before chunking.
	Content string

	// Provenance is copied from the RawDocument.
	Provenance map[string]any

	// Metadata is filled in by the tagger stage of the pipeline.
	Metadata DocumentMetadata

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk is a contiguous piece of document text emitted for indexing.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text content of this chunk.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// Metadata is the document-level metadata.
	Metadata DocumentMetadata

	// Structure is set only when the chunk's leading entry title
	// was found in the document's structure map.
	Structure *StructuralTag
}

// IsTagged returns true if the chunk carries a quadrant and ring.
func (c *Chunk) IsTagged() bool {
	return c.Structure != nil
}

// FlatMetadata returns the string-keyed metadata consumed by the
// indexing layer. Quadrant and ring keys are present only when tagged.
func (c *Chunk) FlatMetadata() map[string]string {
	meta := map[string]string{
		MetaCreationDate: c.Metadata.CreationDate,
		MetaFilename:     c.Metadata.Filename,
		MetaTitle:        c.Metadata.Title,
		MetaVolume:       c.Metadata.Volume,
		MetaPeriod:       c.Metadata.Period,
	}
	if c.Structure != nil {
		meta[MetaQuadrant] = c.Structure.Quadrant.String()
		meta[MetaRing] = c.Structure.Ring.String()
	}
	return meta
}

// ChunkFromFlatMetadata restores metadata fields from a flat mapping.
// It is the inverse of FlatMetadata and is used by storage adapters.
func ChunkFromFlatMetadata(c *Chunk, meta map[string]string) {
	c.Metadata = DocumentMetadata{
		CreationDate: meta[MetaCreationDate],
		Filename:     meta[MetaFilename],
		Title:        meta[MetaTitle],
		Volume:       meta[MetaVolume],
		Period:       meta[MetaPeriod],
	}
	c.Structure = nil
	quadrant, hasQuadrant := meta[MetaQuadrant]
	ring, hasRing := meta[MetaRing]
	if hasQuadrant && hasRing {
		c.Structure = &StructuralTag{Quadrant: Quadrant(quadrant), Ring: Ring(ring)}
	}
}
