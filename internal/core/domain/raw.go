package domain

import "fmt"

// Provenance keys set by the text extractor.
const (
	// ProvenanceSource is the file path of the source PDF.
	ProvenanceSource = "source"

	// ProvenanceCreationDate is the creation timestamp of the source PDF.
	ProvenanceCreationDate = "creationdate"
)

// RawDocument is the text extractor's output before normalisation.
// It is treated as immutable once produced.
type RawDocument struct {
	// Text is the extracted full-document text.
	// Page boundaries are not preserved.
	Text string

	// Provenance carries extractor-supplied fields such as the source path
	// and creation date. Unknown fields are passed through untouched.
	Provenance map[string]any
}

// ProvenanceString returns the provenance value for key as a string.
// Missing or nil values yield "".
func (r *RawDocument) ProvenanceString(key string) string {
	if r == nil {
		return ""
	}
	return ProvenanceValue(r.Provenance, key)
}

// Source returns the source path recorded in provenance.
func (r *RawDocument) Source() string {
	return r.ProvenanceString(ProvenanceSource)
}

// ProvenanceValue reads key from a provenance map as a string.
// Non-string values are formatted with fmt.Sprint.
func ProvenanceValue(provenance map[string]any, key string) string {
	val, ok := provenance[key]
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}
