// Package metadata derives document metadata for radar reports and
// attaches it, with structural tags, to chunks.
package metadata

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

// leadingTitle matches an entry ordinal and title at the start of a chunk.
var leadingTitle = regexp.MustCompile(`^\d{1,3}\. [^"\n]+`)

// Compose derives document metadata from provenance.
//
// The filename is the last path segment of the source. Report filenames
// follow <prefix>_<title words>_<volume>_<lang>.pdf: the title is the
// title-cased words between the prefix and the language suffix, and the
// volume is the last two characters of the final title word. A missing
// source yields empty filename, title and volume. Compose never fails.
func Compose(provenance map[string]any, period string) domain.DocumentMetadata {
	meta := FromProvenance(provenance)
	meta.Period = period
	if meta.Filename == "" {
		return meta
	}

	parts := strings.Split(TitleCase(meta.Filename), "_")
	if len(parts) < 3 {
		return meta
	}
	words := parts[1 : len(parts)-1]

	meta.Title = strings.Join(words, " ")
	meta.Volume = lastRunes(words[len(words)-1], 2)

	return meta
}

// FromProvenance keeps only what the extractor recorded: the creation
// date and the last path segment of the source.
func FromProvenance(provenance map[string]any) domain.DocumentMetadata {
	source := domain.ProvenanceValue(provenance, domain.ProvenanceSource)
	return domain.DocumentMetadata{
		CreationDate: domain.ProvenanceValue(provenance, domain.ProvenanceCreationDate),
		Filename:     source[strings.LastIndex(source, "/")+1:],
	}
}

// TitleCase upper-cases the first letter of every word and lower-cases
// the rest. A word is a run of letters; digits, underscores and
// punctuation all start a new word.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToTitle(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}

	return b.String()
}

// LeadingTitle returns the entry title a chunk starts with, such as
// "1. 1% canary", and whether one was found.
func LeadingTitle(chunk string) (string, bool) {
	title := leadingTitle.FindString(chunk)
	if title == "" {
		return "", false
	}
	return strings.TrimSpace(title), true
}

// Attach builds chunks from texts. Every chunk carries doc; a chunk whose
// leading title is a key of structure also carries that tag.
func Attach(texts []string, doc domain.DocumentMetadata, structure domain.StructureMap) []domain.Chunk {
	chunks := make([]domain.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = domain.Chunk{ID: uuid.New().String(), Content: text, Position: i}
	}
	return Annotate(chunks, doc, structure)
}

// Annotate returns copies of chunks carrying doc and their structural tag.
// Text, identity and order are kept; chunks itself is not modified.
func Annotate(chunks []domain.Chunk, doc domain.DocumentMetadata, structure domain.StructureMap) []domain.Chunk {
	out := make([]domain.Chunk, len(chunks))
	for i, chunk := range chunks {
		chunk.Metadata = doc
		chunk.Structure = Tag(chunk.Content, structure)
		out[i] = chunk
	}
	return out
}

// Tag looks up the structural tag of a chunk by its leading title.
// It returns nil when the chunk has no title or the title is unknown.
func Tag(text string, structure domain.StructureMap) *domain.StructuralTag {
	title, ok := LeadingTitle(text)
	if !ok {
		return nil
	}
	return structure.Lookup(title)
}

func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
