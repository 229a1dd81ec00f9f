//go:build random

package caser

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// PatternRandom uppercases or lowercases each letter uniformly at random.
// Characters without a case pass through unchanged. It is the only pattern
// with nondeterministic output.
const PatternRandom = patternRandom

// Random is space separated words whose letters are randomly upper or lower
// case: "My vaRIAbLE nAme".
var Random = Case{Boundaries: []Boundary{BoundarySpace}, Pattern: PatternRandom, Delimiter: " "}

func init() {
	extraPatterns["random"] = PatternRandom
	builtinCases["random"] = Random
}

// applyRandom draws from the shared top-level generator, which is safe for
// concurrent use.
func applyRandom(words []string) []string {
	return randomWords(words, rand.Uint64)
}

// randomWords applies the random pattern, deciding each letter's case by the
// low bit of next. Tests pass a seeded generator to get reproducible output.
func randomWords(words []string, next func() uint64) []string {
	out := make([]string, len(words))
	for i, w := range words {
		var b strings.Builder
		b.Grow(len(w))
		for _, r := range w {
			switch {
			case !unicode.IsUpper(r) && !unicode.IsLower(r):
				b.WriteRune(r)
			case next()&1 == 1:
				b.WriteRune(unicode.ToUpper(r))
			default:
				b.WriteRune(unicode.ToLower(r))
			}
		}
		out[i] = b.String()
	}
	return out
}
