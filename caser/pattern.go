package caser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pattern is the per-character casing rule a Case applies to the words
// produced by boundary splitting. The set of patterns is closed and small;
// Apply dispatches on the value.
type Pattern uint8

const (
	// PatternOriginal preserves the input casing of every word. It is the
	// zero value, so a zero Case only re-splits and re-joins.
	PatternOriginal Pattern = iota

	// PatternLowercase lowercases every letter: "Case" -> "case".
	PatternLowercase

	// PatternUppercase uppercases every letter: "Case" -> "CASE".
	PatternUppercase

	// PatternCapital uppercases the first letter of each word and lowercases
	// the rest: "CASE" -> "Case".
	PatternCapital

	// PatternSentence capitalizes only the first word; every other word is
	// fully lowercased.
	PatternSentence

	// PatternCamel lowercases the first word and capitalizes the rest.
	PatternCamel

	// PatternToggle lowercases the first character of each word and
	// uppercases the remainder: "Case" -> "cASE".
	PatternToggle

	// PatternAlternating alternates letter casing across the entire word
	// sequence, starting lowercase. Characters without a case pass through
	// and do not advance the alternation.
	PatternAlternating

	// patternRandom backs the random pattern. The exported PatternRandom
	// constant only exists in builds with the random tag.
	patternRandom
)

// ErrUnknownPattern is returned by ParsePattern for unrecognized names.
var ErrUnknownPattern = errors.New("unknown pattern")

// extraPatterns holds pattern names registered by build variants.
var extraPatterns = map[string]Pattern{}

// String returns the config-file name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternOriginal:
		return "original"
	case PatternLowercase:
		return "lower"
	case PatternUppercase:
		return "upper"
	case PatternCapital:
		return "capital"
	case PatternSentence:
		return "sentence"
	case PatternCamel:
		return "camel"
	case PatternToggle:
		return "toggle"
	case PatternAlternating:
		return "alternating"
	case patternRandom:
		return "random"
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// ParsePattern resolves a pattern name as used in case config files. The
// "random" name resolves only in builds with the random tag.
func ParsePattern(name string) (Pattern, error) {
	switch name {
	case "original":
		return PatternOriginal, nil
	case "lower":
		return PatternLowercase, nil
	case "upper":
		return PatternUppercase, nil
	case "capital":
		return PatternCapital, nil
	case "sentence":
		return PatternSentence, nil
	case "camel":
		return PatternCamel, nil
	case "toggle":
		return PatternToggle, nil
	case "alternating":
		return PatternAlternating, nil
	}
	if p, ok := extraPatterns[name]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// Apply transforms words according to the pattern. The result always has the
// same number of words as the input and each word keeps its character count;
// only the case of cased letters changes. Apply never fails: any word
// sequence, including empty words and words without letters, is valid input.
func (p Pattern) Apply(words []string) []string {
	out := make([]string, len(words))

	switch p {
	case PatternOriginal:
		copy(out, words)

	case PatternLowercase:
		for i, w := range words {
			out[i] = strings.ToLower(w)
		}

	case PatternUppercase:
		for i, w := range words {
			out[i] = strings.ToUpper(w)
		}

	case PatternCapital:
		title := cases.Title(language.Und)
		for i, w := range words {
			out[i] = title.String(strings.ToLower(w))
		}

	case PatternSentence:
		title := cases.Title(language.Und)
		for i, w := range words {
			if i == 0 {
				out[i] = title.String(strings.ToLower(w))
			} else {
				out[i] = strings.ToLower(w)
			}
		}

	case PatternCamel:
		title := cases.Title(language.Und)
		for i, w := range words {
			if i == 0 {
				out[i] = strings.ToLower(w)
			} else {
				out[i] = title.String(strings.ToLower(w))
			}
		}

	case PatternToggle:
		for i, w := range words {
			out[i] = toggleWord(w)
		}

	case PatternAlternating:
		// The flag is local to this call and threads across word boundaries,
		// so consecutive words continue the alternation instead of each word
		// restarting at the same phase.
		upper := false
		for i, w := range words {
			var b strings.Builder
			b.Grow(len(w))
			for _, r := range w {
				if unicode.IsUpper(r) || unicode.IsLower(r) {
					if upper {
						b.WriteRune(unicode.ToUpper(r))
					} else {
						b.WriteRune(unicode.ToLower(r))
					}
					upper = !upper
				} else {
					b.WriteRune(r)
				}
			}
			out[i] = b.String()
		}

	case patternRandom:
		return applyRandom(words)

	default:
		copy(out, words)
	}

	return out
}

// toggleWord lowercases the first character and uppercases the remainder.
// The lowercase call applies to whatever the first character is, letter or
// not, matching the passthrough behavior of the other patterns.
func toggleWord(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(w))
	b.WriteRune(unicode.ToLower(runes[0]))
	b.WriteString(strings.ToUpper(string(runes[1:])))
	return b.String()
}
