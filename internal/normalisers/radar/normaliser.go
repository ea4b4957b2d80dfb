// Package radar provides the normaliser for Technology Radar PDF text.
//
// Text extracted from a radar PDF carries artefacts of the rendered page:
// the ring legend of every quadrant chart (followed by the blip numbers
// plotted on it), the copyright footer with its page number, and the
// blip legend caption. Clean removes them and leaves everything else intact.
package radar

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/logger"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// space is whitespace as text extractors emit it: ASCII whitespace plus
// vertical tab, the information separators, NEL and every Unicode space
// separator (U+00A0 after the copyright sign, among others).
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// artefactPattern matches the three kinds of page artefacts. Every \s in
// the source below stands for space.
var artefactPattern = regexp.MustCompile(strings.ReplaceAll(
	// Ring legend of a quadrant chart plus the blip-number lines below it.
	`(Hold\s+HoldAssess\s+AssessTrial\s+TrialAdopt\s+Adopt\s*\n(?:\s*\d+(?:\s+\d+)*\s*\n?)*)`+
		// Page footer with an optional page-number line.
		`|(©\s*Thoughtworks,\s*Inc\.\s*All\s*Rights\s*Reserved\.(?:\s*\n\s*\d+)?)`+
		// Blip legend caption.
		`|(?:New\s+Moved\s+in/out\s+No\s+change)`,
	`\s`, space,
))

// Clean removes page artefacts from raw radar text and trims the result.
// Removal repeats until nothing matches, so Clean(Clean(t)) == Clean(t).
func Clean(raw string) string {
	text := raw
	for {
		next := artefactPattern.ReplaceAllString(text, "")
		if next == text {
			break
		}
		text = next
	}
	return strings.TrimSpace(text)
}

// Normaliser cleans radar text into a Document.
type Normaliser struct {
	log *logger.Logger
}

// New creates a new radar normaliser.
func New(log *logger.Logger) *Normaliser {
	return &Normaliser{log: log}
}

// Name returns the normaliser name.
func (n *Normaliser) Name() string {
	return "radar"
}

// Normalise converts a raw document to a normalised document.
// The Content field contains the cleaned text.
// Chunking is handled by the PostProcessor pipeline.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	source := raw.Source()
	content := Clean(raw.Text)
	n.log.Debug("Normalised %s: %d -> %d bytes", source, len(raw.Text), len(content))

	doc := domain.Document{
		ID:         DocumentID(source),
		URI:        source,
		Content:    content,
		Provenance: copyProvenance(raw.Provenance),
		CreatedAt:  time.Now(),
	}

	return &driven.NormaliseResult{
		Document: doc,
	}, nil
}

// DocumentID derives a stable document identifier from the source path,
// so re-ingesting the same file replaces the previous chunks.
// Documents without a source get a random identifier.
func DocumentID(source string) string {
	if source == "" {
		return uuid.New().String()
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(source)).String()
}

// copyProvenance creates a shallow copy of provenance.
func copyProvenance(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
