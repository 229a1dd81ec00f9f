//go:build !random

package caser

// applyRandom is unreachable without the random build tag: the only Pattern
// value that dispatches to it is not exported. It still must compile, so the
// disabled variant is a passthrough copy.
func applyRandom(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}
