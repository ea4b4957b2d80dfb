// Package structure recovers the quadrant, ring and entry hierarchy from
// normalised radar text.
//
// Every quadrant of a radar report opens with an overview listing its
// entries ring by ring:
//
//	Techniques
//	Adopt
//	1. 1% canary
//	Trial
//	12. Using GenAI to understand
//	legacy codebases
//	Assess
//	...
//	Hold
//	...
//
// The overview ends at the first blank line after the Hold heading.
// Extract reads those overviews and maps each entry title to its
// quadrant and ring. It never looks at chunk boundaries.
package structure

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/logger"
)

// space and lineSpace are whitespace as text extractors emit it, with and
// without line feeds. Both include U+00A0 and the other Unicode spaces.
const (
	space     = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`
	lineSpace = `[\t\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}]`
)

var (
	blankLine    = regexp.MustCompile(`\n` + space + `*\n`)
	entryStart   = regexp.MustCompile(`\d+\.`)
	nextEntry    = regexp.MustCompile(`\n\d+\.`)
	leadingEntry = regexp.MustCompile(`^\d+\.`)
	whitespace   = regexp.MustCompile(space + `+`)
)

// Extractor builds structure maps.
type Extractor struct {
	log            *logger.Logger
	quadrantLabels map[domain.Quadrant]*regexp.Regexp
	ringLabels     map[domain.Ring]*regexp.Regexp
}

// New creates an extractor.
func New(log *logger.Logger) *Extractor {
	e := &Extractor{
		log:            log,
		quadrantLabels: make(map[domain.Quadrant]*regexp.Regexp),
		ringLabels:     make(map[domain.Ring]*regexp.Regexp),
	}
	for _, q := range domain.Quadrants() {
		e.quadrantLabels[q] = regexp.MustCompile(regexp.QuoteMeta(q.Label()) + space + `*\n` + space + `*` + string(domain.RingAdopt))
	}
	for _, r := range domain.Rings() {
		e.ringLabels[r] = regexp.MustCompile(regexp.QuoteMeta(string(r)) + lineSpace + `*\n`)
	}
	return e
}

// Extract maps every entry listed in a quadrant overview to its quadrant
// and ring. Quadrants are processed in fixed order and a repeated entry
// keeps the tag of its last occurrence. Quadrants without an overview are
// skipped.
func Extract(text string) domain.StructureMap {
	return New(nil).Extract(text)
}

// Extract maps every entry listed in a quadrant overview to its quadrant
// and ring.
func (e *Extractor) Extract(text string) domain.StructureMap {
	structure := make(domain.StructureMap)

	for _, quadrant := range domain.Quadrants() {
		span, ok := e.quadrantSpan(text, quadrant)
		if !ok {
			e.log.Debug("No overview found for quadrant %s", quadrant)
			continue
		}

		for _, ring := range domain.Rings() {
			body, ok := e.ringSpan(span, ring)
			if !ok {
				continue
			}
			for _, key := range Entries(body) {
				structure[key] = domain.StructuralTag{Quadrant: quadrant, Ring: ring}
			}
		}
	}

	return structure
}

// quadrantSpan returns the overview of a quadrant: from its label through
// the Trial, Assess and Hold headings up to the next blank line or the
// end of text.
func (e *Extractor) quadrantSpan(text string, quadrant domain.Quadrant) (string, bool) {
	loc := e.quadrantLabels[quadrant].FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	pos := loc[1]
	for _, ring := range []domain.Ring{domain.RingTrial, domain.RingAssess, domain.RingHold} {
		i := strings.Index(text[pos:], string(ring))
		if i < 0 {
			return "", false
		}
		pos += i + len(ring)
	}

	end := len(text)
	if strings.HasSuffix(text, "\n") && len(text)-1 >= pos {
		end = len(text) - 1
	}
	if b := blankLine.FindStringIndex(text[pos:]); b != nil && pos+b[0] < end {
		end = pos + b[0]
	}

	return text[loc[0]:end], true
}

// ringSpan returns the text under a ring heading. It ends before the line
// holding the next ring's heading. Hold, the last ring, ends at the next
// blank line or the end of the span.
func (e *Extractor) ringSpan(span string, ring domain.Ring) (string, bool) {
	next, hasNext := ring.Next()

	for _, loc := range e.ringLabels[ring].FindAllStringIndex(span, -1) {
		bodyStart := loc[1]

		if !hasNext {
			end := len(span)
			if b := blankLine.FindStringIndex(span[bodyStart:]); b != nil {
				end = bodyStart + b[0]
			}
			return span[bodyStart:end], true
		}

		// The label's own line break may also open the next heading
		// when the ring is empty.
		if i := strings.Index(span[bodyStart-1:], "\n"+string(next)); i >= 0 {
			end := max(bodyStart-1+i, bodyStart)
			return span[bodyStart:end], true
		}
	}

	return "", false
}

// Entries splits a ring listing into normalised entry titles. An entry
// runs from its ordinal up to the next line starting with an ordinal.
// Whitespace inside a title, including line breaks, collapses to single
// spaces.
func Entries(listing string) []string {
	tail := len(strings.TrimRight(listing, "\n"))

	var entries []string
	pos := 0
	for pos < len(listing) {
		loc := entryStart.FindStringIndex(listing[pos:])
		if loc == nil {
			break
		}
		start, from := pos+loc[0], pos+loc[1]

		end := max(tail, from)
		if n := nextEntry.FindStringIndex(listing[from:]); n != nil && from+n[0] < end {
			end = from + n[0]
		}
		pos = end

		entry := strings.TrimSpace(listing[start:end])
		if entry == "" || !leadingEntry.MatchString(entry) {
			continue
		}
		entries = append(entries, strings.TrimSpace(whitespace.ReplaceAllString(entry, " ")))
	}

	return entries
}
