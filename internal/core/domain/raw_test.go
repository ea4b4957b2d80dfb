package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawDocument_ProvenanceString(t *testing.T) {
	raw := &RawDocument{
		Text: "Techniques\nAdopt",
		Provenance: map[string]any{
			ProvenanceSource:       "data/raw/tr_technology_radar_vol_32_en.pdf",
			ProvenanceCreationDate: "2025-04-02T10:00:00Z",
			"page_count":           42,
			"empty":                nil,
		},
	}

	assert.Equal(t, "data/raw/tr_technology_radar_vol_32_en.pdf", raw.Source())
	assert.Equal(t, "2025-04-02T10:00:00Z", raw.ProvenanceString(ProvenanceCreationDate))
	assert.Equal(t, "42", raw.ProvenanceString("page_count"))
	assert.Equal(t, "", raw.ProvenanceString("empty"))
	assert.Equal(t, "", raw.ProvenanceString("missing"))
}

func TestRawDocument_NilSafe(t *testing.T) {
	var raw *RawDocument
	assert.Equal(t, "", raw.Source())

	empty := &RawDocument{}
	assert.Equal(t, "", empty.Source())
}
