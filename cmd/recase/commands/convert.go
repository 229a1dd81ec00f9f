package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/casetools/recase/caser"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Case      string
	CasesFile string
	Format    string
	From      string
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Case, "c", "", "target case name (required, see 'recase list')")
	fs.StringVar(&flags.Case, "case", "", "target case name (required, see 'recase list')")
	fs.StringVar(&flags.From, "from", "", "source case name; split with its boundaries instead of the defaults")
	fs.StringVar(&flags.CasesFile, "cases-file", "", "YAML file with custom case definitions")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: recase convert [flags] <text|->\n\n")
		fmt.Fprintf(w, "Convert text to a named case.\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  recase convert -c snake \"My variable NAME\"\n")
		fmt.Fprintf(w, "  recase convert -c toggle \"test_toggle\"\n")
		fmt.Fprintf(w, "  recase convert -c camel --from snake \"my_variable_name\"\n")
		fmt.Fprintf(w, "  recase convert -c toggle-phrase --cases-file cases.yaml \"some text\"\n")
		fmt.Fprintf(w, "  echo \"My variable NAME\" | recase convert -c kebab -\n")
	}

	return fs, flags
}

// convertResult is the structured output of the convert command.
type convertResult struct {
	Input  string `json:"input" yaml:"input"`
	Case   string `json:"case" yaml:"case"`
	Output string `json:"output" yaml:"output"`
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one text argument or '-' for stdin")
	}

	if flags.Case == "" {
		fs.Usage()
		return fmt.Errorf("target case is required (use -c or --case)")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var custom map[string]caser.Case
	if flags.CasesFile != "" {
		loaded, err := LoadCasesFile(flags.CasesFile)
		if err != nil {
			return err
		}
		custom = loaded
	}

	target, err := ResolveCase(flags.Case, custom)
	if err != nil {
		return err
	}

	input := fs.Arg(0)
	if input == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = strings.TrimRight(string(data), "\n")
	}

	var output string
	if flags.From != "" {
		source, err := ResolveCase(flags.From, custom)
		if err != nil {
			return err
		}
		output = caser.ToFrom(input, target, source)
	} else {
		output = caser.To(input, target)
	}

	if flags.Format == FormatText {
		fmt.Println(output)
		return nil
	}
	return OutputStructured(convertResult{Input: input, Case: flags.Case, Output: output}, flags.Format)
}
