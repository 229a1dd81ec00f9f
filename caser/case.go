package caser

import "sort"

// Case defines one named casing convention: the boundaries that delimit words
// in a string already written in this case, the pattern applied to each word,
// and the delimiter used when joining words back together.
type Case struct {
	// Boundaries are the word boundaries of a string in this case. They are
	// consumed by ToFrom when the source case is known; To splits with
	// DefaultBoundaries instead.
	Boundaries []Boundary

	// Pattern is the per-character casing rule applied to each word.
	Pattern Pattern

	// Delimiter joins the transformed words into the output string.
	Delimiter string
}

// Built-in cases. Random is additionally available in builds with the
// random tag.
var (
	// Lower is lower case words separated by spaces: "my variable name".
	Lower = Case{Boundaries: []Boundary{BoundarySpace}, Pattern: PatternLowercase, Delimiter: " "}

	// Upper is UPPER CASE WORDS separated by spaces: "MY VARIABLE NAME".
	Upper = Case{Boundaries: []Boundary{BoundarySpace}, Pattern: PatternUppercase, Delimiter: " "}

	// Title is Capitalized Words separated by spaces: "My Variable Name".
	Title = Case{Boundaries: []Boundary{BoundarySpace}, Pattern: PatternCapital, Delimiter: " "}

	// Sentence is lower case words with only the first capitalized:
	// "My variable name".
	Sentence = Case{Boundaries: []Boundary{BoundarySpace}, Pattern: PatternSentence, Delimiter: " "}

	// Snake is lower_case_words_joined_by_underscores: "my_variable_name".
	Snake = Case{Boundaries: []Boundary{BoundaryUnderscore}, Pattern: PatternLowercase, Delimiter: "_"}

	// ScreamingSnake is UPPER_CASE_WORDS_JOINED_BY_UNDERSCORES:
	// "MY_VARIABLE_NAME".
	ScreamingSnake = Case{Boundaries: []Boundary{BoundaryUnderscore}, Pattern: PatternUppercase, Delimiter: "_"}

	// Kebab is lower-case-words-joined-by-hyphens: "my-variable-name".
	Kebab = Case{Boundaries: []Boundary{BoundaryHyphen}, Pattern: PatternLowercase, Delimiter: "-"}

	// Cobol is UPPER-CASE-WORDS-JOINED-BY-HYPHENS: "MY-VARIABLE-NAME".
	Cobol = Case{Boundaries: []Boundary{BoundaryHyphen}, Pattern: PatternUppercase, Delimiter: "-"}

	// Train is Capitalized-Words-Joined-By-Hyphens: "My-Variable-Name".
	Train = Case{Boundaries: []Boundary{BoundaryHyphen}, Pattern: PatternCapital, Delimiter: "-"}

	// Camel is capitalizedWordsConcatenated with the first word lower case:
	// "myVariableName".
	Camel = Case{Boundaries: []Boundary{BoundaryLowerUpper, BoundaryAcronym}, Pattern: PatternCamel, Delimiter: ""}

	// Pascal is CapitalizedWordsConcatenated: "MyVariableName".
	Pascal = Case{Boundaries: []Boundary{BoundaryLowerUpper, BoundaryAcronym}, Pattern: PatternCapital, Delimiter: ""}

	// Flat is lowercasewordsconcatenated: "myvariablename". A flat string
	// has no recoverable word boundaries.
	Flat = Case{Pattern: PatternLowercase, Delimiter: ""}

	// UpperFlat is UPPERCASEWORDSCONCATENATED: "MYVARIABLENAME".
	UpperFlat = Case{Pattern: PatternUppercase, Delimiter: ""}

	// Toggle is space separated words with the first character of each word
	// lower case and the rest upper case: "mY vARIABLE nAME".
	Toggle = Case{Boundaries: []Boundary{BoundarySpace}, Pattern: PatternToggle, Delimiter: " "}

	// Alternating is space separated words whose letters alternate between
	// lower and upper case across the whole string: "mY vArIaBlE nAmE".
	Alternating = Case{Boundaries: []Boundary{BoundarySpace}, Pattern: PatternAlternating, Delimiter: " "}
)

// builtinCases maps the names accepted by ByName, the CLI, and the MCP tools
// to their presets. Build variants register additional entries from init.
var builtinCases = map[string]Case{
	"lower":           Lower,
	"upper":           Upper,
	"title":           Title,
	"sentence":        Sentence,
	"snake":           Snake,
	"screaming-snake": ScreamingSnake,
	"kebab":           Kebab,
	"cobol":           Cobol,
	"train":           Train,
	"camel":           Camel,
	"pascal":          Pascal,
	"flat":            Flat,
	"upper-flat":      UpperFlat,
	"toggle":          Toggle,
	"alternating":     Alternating,
}

// Names returns the sorted names of all built-in cases.
func Names() []string {
	names := make([]string, 0, len(builtinCases))
	for name := range builtinCases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the built-in case registered under name.
func ByName(name string) (Case, bool) {
	c, ok := builtinCases[name]
	return c, ok
}
