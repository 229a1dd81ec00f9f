package caser

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCaseYAML = `
cases:
  toggle-phrase:
    boundaries: [space, underscore]
    pattern: toggle
    delimiter: " "
  tight-alternating:
    boundaries: [hyphen]
    pattern: alternating
    delimiter: ""
`

func TestLoadCases(t *testing.T) {
	loaded, err := LoadCases(strings.NewReader(validCaseYAML))
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	toggle, ok := loaded["toggle-phrase"]
	require.True(t, ok)
	assert.Equal(t, []Boundary{BoundarySpace, BoundaryUnderscore}, toggle.Boundaries)
	assert.Equal(t, PatternToggle, toggle.Pattern)
	assert.Equal(t, " ", toggle.Delimiter)

	alt, ok := loaded["tight-alternating"]
	require.True(t, ok)
	assert.Equal(t, []Boundary{BoundaryHyphen}, alt.Boundaries)
	assert.Equal(t, PatternAlternating, alt.Pattern)
	assert.Empty(t, alt.Delimiter)

	// Loaded cases behave like any other Case.
	assert.Equal(t, "tEST tOGGLE", To("test_toggle", toggle))
	assert.Equal(t, "aNoThErExAmPlE", To("Another Example", alt))
}

func TestLoadCasesWithLogger(t *testing.T) {
	var buf strings.Builder
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := LoadCases(strings.NewReader(validCaseYAML), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "loaded case definition")
	assert.Contains(t, buf.String(), "toggle-phrase")
}

func TestLoadCasesErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "not yaml",
			yaml:    "cases: [::",
			wantErr: ErrConfig,
		},
		{
			name:    "no cases",
			yaml:    "cases: {}",
			wantErr: ErrConfig,
		},
		{
			name: "unknown pattern",
			yaml: "cases:\n  bad:\n    pattern: shouty\n    delimiter: \" \"",

			wantErr: ErrUnknownPattern,
		},
		{
			name:    "unknown boundary",
			yaml:    "cases:\n  bad:\n    boundaries: [comma]\n    pattern: lower",
			wantErr: ErrUnknownBoundary,
		},
		{
			name:    "empty document",
			yaml:    "",
			wantErr: ErrConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCases(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
