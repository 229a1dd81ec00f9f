package commands

import (
	"errors"
	"flag"
	"fmt"
	"sort"

	"github.com/casetools/recase/caser"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	Sample    string
	CasesFile string
	Format    string
}

// SetupListFlags creates and configures a FlagSet for the list command.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.Sample, "sample", "My variable NAME", "sample text rendered in each case")
	fs.StringVar(&flags.CasesFile, "cases-file", "", "YAML file with custom case definitions to include")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: recase list [flags]\n\n")
		fmt.Fprintf(w, "List available cases with a sample rendering of each.\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  recase list\n")
		fmt.Fprintf(w, "  recase list --sample \"Another Example\"\n")
		fmt.Fprintf(w, "  recase list --cases-file cases.yaml -f json\n")
	}

	return fs, flags
}

// listEntry is one row of the list command output.
type listEntry struct {
	Name    string `json:"name" yaml:"name"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Sample  string `json:"sample" yaml:"sample"`
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs, flags := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("list command takes no arguments")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	cases := make(map[string]caser.Case)
	for _, name := range caser.Names() {
		c, _ := caser.ByName(name)
		cases[name] = c
	}
	if flags.CasesFile != "" {
		custom, err := LoadCasesFile(flags.CasesFile)
		if err != nil {
			return err
		}
		for name, c := range custom {
			cases[name] = c
		}
	}

	names := make([]string, 0, len(cases))
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]listEntry, 0, len(names))
	for _, name := range names {
		c := cases[name]
		entries = append(entries, listEntry{
			Name:    name,
			Pattern: c.Pattern.String(),
			Sample:  caser.To(flags.Sample, c),
		})
	}

	if flags.Format == FormatText {
		width := 0
		for _, e := range entries {
			if len(e.Name) > width {
				width = len(e.Name)
			}
		}
		for _, e := range entries {
			fmt.Printf("%-*s  %s\n", width, e.Name, e.Sample)
		}
		return nil
	}
	return OutputStructured(entries, flags.Format)
}
