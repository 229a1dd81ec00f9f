// Package caser converts strings between naming conventions such as
// snake_case, camelCase, Title Case, and the space-delimited toggle,
// alternating, and random cases.
//
// A conversion is defined by a [Case]: the set of [Boundary] values that
// delimit words in a string already written in that case, the [Pattern]
// applied to each word, and the delimiter used to join the result.
//
// Convert a string with [To]:
//
//	caser.To("My variable NAME", caser.Snake)  // "my_variable_name"
//	caser.To("My variable NAME", caser.Toggle) // "mY vARIABLE nAME"
//
// [To] splits the input using [DefaultBoundaries], so delimiters and
// camel-style humps are all recognized regardless of the target case. When
// the source case is known, [ToFrom] splits using that case's declared
// boundaries instead.
//
// Custom cases can be defined in YAML and loaded with [LoadCases]; see the
// package examples.
//
// The random case is only available in builds with the "random" build tag.
// Without the tag, the Random and PatternRandom identifiers do not exist, so
// the deterministic conversion path carries no random-number dependency.
package caser
