// Package recase provides tools for converting text between naming
// conventions (string cases).
//
// The conversion engine lives in the caser package, which defines cases as a
// bundle of word boundaries, a per-character casing pattern, and a join
// delimiter. Beyond the usual snake_case, camelCase, and Title Case family,
// it ships three space-delimited presets: toggle case (tOGGLE cASE), where
// each word starts lowercase and continues uppercase; alternating case
// (aLtErNaTiNg), where letter casing alternates across the whole string; and,
// in builds with the "random" build tag, random case (rAnDOm).
//
// # Quick Start
//
// Convert a string:
//
//	import "github.com/casetools/recase/caser"
//
//	caser.To("My variable NAME", caser.Snake)  // "my_variable_name"
//	caser.To("My variable NAME", caser.Toggle) // "mY vARIABLE nAME"
//
// Define a custom case:
//
//	c := caser.Case{
//	    Boundaries: []caser.Boundary{caser.BoundarySpace},
//	    Pattern:    caser.PatternAlternating,
//	    Delimiter:  " ",
//	}
//	caser.To("Another Example", c) // "aNoThEr ExAmPlE"
//
// Custom cases can also be defined in YAML and loaded with caser.LoadCases.
//
// # CLI and MCP
//
// The recase command (cmd/recase) exposes the same conversions from the
// command line and, via "recase mcp", as Model Context Protocol tools over
// stdio.
//
// This root package only carries build metadata shared by the CLI and the
// MCP server.
package recase
