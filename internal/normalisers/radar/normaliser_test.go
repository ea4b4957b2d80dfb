package radar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/logger"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no artefacts",
			input:    "1. 1% canary\nAdopt\nThe 1% canary is a release technique.",
			expected: "1. 1% canary\nAdopt\nThe 1% canary is a release technique.",
		},
		{
			name:     "legend block with blip numbers",
			input:    "Techniques\nHold HoldAssess AssessTrial TrialAdopt Adopt\n1 2 3\n4 5\n6\nAdopt\n1. 1% canary",
			expected: "Techniques\nAdopt\n1. 1% canary",
		},
		{
			name:     "legend block with extra spacing",
			input:    "Tools\nHold  HoldAssess\tAssessTrial TrialAdopt   Adopt  \n 12  13 \nbody",
			expected: "Tools\nbody",
		},
		{
			name:     "footer with page number",
			input:    "end of entry.\n© Thoughtworks, Inc. All Rights Reserved.\n17\n5. Next entry",
			expected: "end of entry.\n\n5. Next entry",
		},
		{
			name:     "footer without page number",
			input:    "text © Thoughtworks, Inc. All Rights Reserved.",
			expected: "text",
		},
		{
			name:     "legend caption",
			input:    "New  Moved in/out   No change\nTechniques",
			expected: "Techniques",
		},
		{
			name:     "caption across lines",
			input:    "Platforms\nNew\nMoved\nin/out\nNo\nchange\n",
			expected: "Platforms",
		},
		{
			name:     "footer with non-breaking space",
			input:    "a\n©\u00a0Thoughtworks, Inc.\u00a0All Rights Reserved.\n3\nb",
			expected: "a\n\nb",
		},
		{
			name:     "caption with non-breaking spaces",
			input:    "New\u00a0Moved in/out\u00a0No\u00a0change\nTechniques",
			expected: "Techniques",
		},
		{
			name:     "legend with non-breaking spaces",
			input:    "Tools\nHold\u00a0HoldAssess AssessTrial TrialAdopt Adopt\u00a0\n12\u00a013\nbody",
			expected: "Tools\nbody",
		},
		{
			name:     "non-breaking space in prose kept",
			input:    "1. 1%\u00a0canary\nAdopt",
			expected: "1. 1%\u00a0canary\nAdopt",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "\n\n  body  \n\n",
			expected: "body",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clean(tc.input))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"Techniques\nHold HoldAssess AssessTrial TrialAdopt Adopt\n1 2\n3\nAdopt\n1. 1% canary",
		"a © Thoughtworks, Inc. All Rights Reserved.\n3\nb",
		// Removing the inner caption exposes an outer one.
		"New Moved New Moved in/out No change in/out No change",
		"Hold HoldAssess AssessTrial TrialAdopt Hold HoldAssess AssessTrial TrialAdopt Adopt\n1\nAdopt\n2\n",
		"  New Moved in/out No change  \n\n",
	}

	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
	}
}

func TestClean_NestedArtefactRemoved(t *testing.T) {
	assert.Equal(t, "", Clean("New Moved New Moved in/out No change in/out No change"))
}

func TestNew(t *testing.T) {
	normaliser := New(logger.Nop())
	require.NotNil(t, normaliser)
	assert.Equal(t, "radar", normaliser.Name())
}

func TestNormalise_NilDocument(t *testing.T) {
	normaliser := New(nil)

	result, err := normaliser.Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestNormalise_Success(t *testing.T) {
	normaliser := New(nil)
	raw := &domain.RawDocument{
		Text: "Techniques\nNew Moved in/out No change\nAdopt\n1. 1% canary\n",
		Provenance: map[string]any{
			domain.ProvenanceSource:       "/data/tr_technology_radar_vol_32_en.pdf",
			domain.ProvenanceCreationDate: "2025-04-02T10:00:00Z",
			"page_count":                  3,
		},
	}

	result, err := normaliser.Normalise(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, result)

	doc := result.Document
	assert.Equal(t, "Techniques\n\nAdopt\n1. 1% canary", doc.Content)
	assert.Equal(t, "/data/tr_technology_radar_vol_32_en.pdf", doc.URI)
	assert.Equal(t, DocumentID("/data/tr_technology_radar_vol_32_en.pdf"), doc.ID)
	assert.Equal(t, 3, doc.Provenance["page_count"])
	assert.False(t, doc.CreatedAt.IsZero())

	// Provenance is copied, not shared.
	doc.Provenance["page_count"] = 4
	assert.Equal(t, 3, raw.Provenance["page_count"])
}

func TestDocumentID(t *testing.T) {
	a := DocumentID("/data/a.pdf")
	assert.Equal(t, a, DocumentID("/data/a.pdf"))
	assert.NotEqual(t, a, DocumentID("/data/b.pdf"))
	assert.NotEqual(t, DocumentID(""), DocumentID(""))
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}
