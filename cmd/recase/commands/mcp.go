package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/casetools/recase/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: recase mcp\n\n")
		fmt.Fprintf(w, "Run the recase MCP server over stdio.\n\n")
		fmt.Fprintf(w, "The server exposes convert and list_cases tools. Defaults are\n")
		fmt.Fprintf(w, "configured via RECASE_* environment variables:\n")
		fmt.Fprintf(w, "  RECASE_SAMPLE_TEXT   sample text rendered by list_cases\n")
		fmt.Fprintf(w, "  RECASE_CASES_FILE    YAML file of custom case definitions\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
