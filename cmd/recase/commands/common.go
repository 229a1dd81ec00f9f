// Package commands provides CLI command handlers for recase.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	recase "github.com/casetools/recase"
	"github.com/casetools/recase/caser"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special argument used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// LoadCasesFile reads custom case definitions from a YAML file.
func LoadCasesFile(path string) (map[string]caser.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cases file: %w", err)
	}
	defer func() { _ = f.Close() }()

	loaded, err := caser.LoadCases(f)
	if err != nil {
		return nil, fmt.Errorf("loading cases file %s: %w", path, err)
	}
	return loaded, nil
}

// ResolveCase finds a case by name among custom definitions (which shadow
// built-ins) and the built-in registry.
func ResolveCase(name string, custom map[string]caser.Case) (caser.Case, error) {
	if c, ok := custom[name]; ok {
		return c, nil
	}
	if c, ok := caser.ByName(name); ok {
		return c, nil
	}
	return caser.Case{}, fmt.Errorf("unknown case '%s'. Valid cases: %v", name, caser.Names())
}

// PrintUsage prints top-level usage to w.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, "recase - convert text between naming conventions\n\n")
	fmt.Fprintf(w, "Usage: recase <command> [flags]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  convert    Convert text to a named case\n")
	fmt.Fprintf(w, "  list       List available cases\n")
	fmt.Fprintf(w, "  mcp        Run the MCP server over stdio\n")
	fmt.Fprintf(w, "  version    Print version information\n")
	fmt.Fprintf(w, "  help       Print this help\n\n")
	fmt.Fprintf(w, "Run 'recase <command> --help' for command-specific flags.\n")
}

// HandleVersion prints version details.
func HandleVersion() {
	fmt.Printf("recase v%s\n", recase.Version())
}
