// Package pdf extracts plain text and document information from PDF files.
package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Provenance keys set in addition to source and creationdate.
const (
	ProvenancePageCount = "page_count"
	ProvenanceProducer  = "producer"
	ProvenanceAuthor    = "author"
)

// Extractor reads PDFs with github.com/ledongthuc/pdf.
// Text is laid out one line per row of glyphs sharing a baseline, top to
// bottom and left to right, so headings positioned with Td/TD keep their
// own line. Page boundaries are not otherwise marked.
type Extractor struct {
	log *logger.Logger
}

// New creates a PDF extractor.
func New(log *logger.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract returns the text of every page and the PDF's provenance.
func (e *Extractor) Extract(ctx context.Context, path string) (raw *domain.RawDocument, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	// The reader panics on some malformed content streams.
	defer func() {
		if p := recover(); p != nil {
			raw, err = nil, fmt.Errorf("read %s: malformed PDF: %v", path, p)
		}
	}()

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("read %s: page %d: %w", path, i, err)
		}
		writeRows(&text, rows)
	}

	docInfo := r.Trailer().Key("Info")
	provenance := map[string]any{
		domain.ProvenanceSource:       path,
		domain.ProvenanceCreationDate: FormatDate(infoString(docInfo, "CreationDate")),
		ProvenancePageCount:           r.NumPage(),
	}
	if producer := infoString(docInfo, "Producer"); producer != "" {
		provenance[ProvenanceProducer] = producer
	}
	if author := infoString(docInfo, "Author"); author != "" {
		provenance[ProvenanceAuthor] = author
	}

	e.log.Debug("Extracted %s: %d pages, %d bytes", path, r.NumPage(), text.Len())

	return &domain.RawDocument{
		Text:       text.String(),
		Provenance: provenance,
	}, nil
}

// writeRows appends each row's text runs, joined without separators, as
// one line. Rows with no text are skipped.
func writeRows(b *strings.Builder, rows pdf.Rows) {
	for _, row := range rows {
		if row == nil {
			continue
		}
		start := b.Len()
		for _, t := range row.Content {
			b.WriteString(t.S)
		}
		if b.Len() > start {
			b.WriteByte('\n')
		}
	}
}

func infoString(info pdf.Value, key string) string {
	v := info.Key(key)
	if v.IsNull() {
		return ""
	}
	return strings.TrimSpace(v.Text())
}
