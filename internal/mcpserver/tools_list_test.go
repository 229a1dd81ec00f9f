package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleListCases(t *testing.T) {
	result, output, err := handleListCases(context.Background(), nil, listInput{})
	require.NoError(t, err)
	require.Nil(t, result)

	require.NotEmpty(t, output.Cases)
	assert.Equal(t, len(output.Cases), output.Count)

	byName := make(map[string]caseSummary, len(output.Cases))
	for _, c := range output.Cases {
		byName[c.Name] = c
	}

	snake, ok := byName["snake"]
	require.True(t, ok)
	assert.Equal(t, "lower", snake.Pattern)
	assert.Equal(t, "_", snake.Delimiter)
	assert.Equal(t, "my_variable_name", snake.Sample)

	toggle, ok := byName["toggle"]
	require.True(t, ok)
	assert.Equal(t, "mY vARIABLE nAME", toggle.Sample)
}

func TestHandleListCasesCustomSample(t *testing.T) {
	result, output, err := handleListCases(context.Background(), nil, listInput{Sample: "Another Example"})
	require.NoError(t, err)
	require.Nil(t, result)

	for _, c := range output.Cases {
		if c.Name == "alternating" {
			assert.Equal(t, "aNoThEr ExAmPlE", c.Sample)
			return
		}
	}
	t.Fatal("alternating case not listed")
}
