package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/casetools/recase/caser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCasesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetCustomCases(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		customMu.Lock()
		customCases = nil
		customMu.Unlock()
	})
}

func TestLoadCustomCases(t *testing.T) {
	resetCustomCases(t)

	path := writeCasesFile(t, `
cases:
  toggle-phrase:
    boundaries: [space, underscore]
    pattern: toggle
    delimiter: " "
`)
	require.NoError(t, loadCustomCases(path))

	c, err := resolveCase("toggle-phrase", nil)
	require.NoError(t, err)
	assert.Equal(t, "tEST tOGGLE", caser.To("test_toggle", c))

	assert.Contains(t, caseNames(), "toggle-phrase")
}

func TestLoadCustomCasesErrors(t *testing.T) {
	resetCustomCases(t)

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, loadCustomCases(filepath.Join(t.TempDir(), "absent.yaml")))
	})

	t.Run("invalid definitions", func(t *testing.T) {
		path := writeCasesFile(t, "cases:\n  bad:\n    pattern: shouty")
		err := loadCustomCases(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, caser.ErrUnknownPattern)
	})
}

func TestResolveCasePrecedence(t *testing.T) {
	resetCustomCases(t)

	// Startup definition shadows the built-in snake case.
	path := writeCasesFile(t, `
cases:
  snake:
    boundaries: [underscore]
    pattern: upper
    delimiter: "_"
`)
	require.NoError(t, loadCustomCases(path))

	c, err := resolveCase("snake", nil)
	require.NoError(t, err)
	assert.Equal(t, caser.PatternUppercase, c.Pattern)

	// Inline definitions shadow startup definitions.
	inline := map[string]caser.Case{"snake": caser.Snake}
	c, err = resolveCase("snake", inline)
	require.NoError(t, err)
	assert.Equal(t, caser.PatternLowercase, c.Pattern)

	// Unknown names report the valid set.
	_, err = resolveCase("mystery", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")
}
