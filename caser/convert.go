package caser

import "strings"

// To converts s to the given case. The input is split into words using
// DefaultBoundaries, the case's pattern is applied, and the words are joined
// with the case's delimiter. Every input is valid; an input with no words
// (empty, or all delimiters) converts to the empty string.
func To(s string, c Case) string {
	return strings.Join(c.Pattern.Apply(splitWords(s, DefaultBoundaries)), c.Delimiter)
}

// ToFrom converts s, known to be written in the source case, to the target
// case. Splitting uses the source case's declared boundaries rather than the
// defaults, which matters when the input contains runes the defaults would
// treat as boundaries: converting "mY vARIABLE" from Toggle splits on spaces
// only, leaving camel humps intact.
func ToFrom(s string, target, source Case) string {
	return strings.Join(target.Pattern.Apply(splitWords(s, source.Boundaries)), target.Delimiter)
}
