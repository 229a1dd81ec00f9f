//go:build !random

package caser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomAbsentWithoutTag verifies that the random capability is a build
// variant, not a runtime branch: without the random tag the pattern name does
// not resolve and no random case is registered.
func TestRandomAbsentWithoutTag(t *testing.T) {
	_, err := ParsePattern("random")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPattern)

	_, ok := ByName("random")
	assert.False(t, ok)
	assert.NotContains(t, Names(), "random")
}
