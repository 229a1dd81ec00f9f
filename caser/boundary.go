package caser

import (
	"errors"
	"fmt"
	"unicode"
)

// Boundary identifies where one word ends and the next begins in a source
// string. Delimiter boundaries match a separator rune, which is dropped from
// the output; the remaining boundaries split between two runes and keep both.
type Boundary int

const (
	// BoundarySpace splits on whitespace and drops it.
	BoundarySpace Boundary = iota

	// BoundaryUnderscore splits on '_' and drops it.
	BoundaryUnderscore

	// BoundaryHyphen splits on '-' and drops it.
	BoundaryHyphen

	// BoundaryLowerUpper splits between a lowercase letter and the uppercase
	// letter that follows it: "oneTwo" -> "one", "Two".
	BoundaryLowerUpper

	// BoundaryAcronym splits inside an uppercase run right before its last
	// letter when a lowercase letter follows: "HTTPServer" -> "HTTP", "Server".
	BoundaryAcronym
)

// ErrUnknownBoundary is returned by ParseBoundary for unrecognized names.
var ErrUnknownBoundary = errors.New("unknown boundary")

// DefaultBoundaries is the boundary set used by To when splitting input of
// unknown provenance. It recognizes the common delimiters and camel humps.
var DefaultBoundaries = []Boundary{
	BoundarySpace,
	BoundaryUnderscore,
	BoundaryHyphen,
	BoundaryLowerUpper,
	BoundaryAcronym,
}

// String returns the config-file name of the boundary.
func (b Boundary) String() string {
	switch b {
	case BoundarySpace:
		return "space"
	case BoundaryUnderscore:
		return "underscore"
	case BoundaryHyphen:
		return "hyphen"
	case BoundaryLowerUpper:
		return "lower-upper"
	case BoundaryAcronym:
		return "acronym"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary resolves a boundary name as used in case config files.
func ParseBoundary(name string) (Boundary, error) {
	switch name {
	case "space":
		return BoundarySpace, nil
	case "underscore":
		return BoundaryUnderscore, nil
	case "hyphen":
		return BoundaryHyphen, nil
	case "lower-upper":
		return BoundaryLowerUpper, nil
	case "acronym":
		return BoundaryAcronym, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBoundary, name)
}

// splitWords splits s into words at the given boundaries. Delimiter runes are
// consumed; hump boundaries split between runes. Empty words are dropped, so
// runs of delimiters and empty input both produce no words.
func splitWords(s string, boundaries []Boundary) []string {
	var space, underscore, hyphen, lowerUpper, acronym bool
	for _, b := range boundaries {
		switch b {
		case BoundarySpace:
			space = true
		case BoundaryUnderscore:
			underscore = true
		case BoundaryHyphen:
			hyphen = true
		case BoundaryLowerUpper:
			lowerUpper = true
		case BoundaryAcronym:
			acronym = true
		}
	}

	runes := []rune(s)
	var words []string
	var word []rune
	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = word[:0]
		}
	}

	for i, r := range runes {
		if (space && unicode.IsSpace(r)) || (underscore && r == '_') || (hyphen && r == '-') {
			flush()
			continue
		}
		if len(word) > 0 {
			prev := word[len(word)-1]
			switch {
			case lowerUpper && unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case acronym && unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		word = append(word, r)
	}
	flush()

	return words
}
