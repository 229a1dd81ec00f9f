// Command recase converts text between naming conventions from the command
// line and exposes the same conversions as an MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/casetools/recase/cmd/recase/commands"
)

func main() {
	if len(os.Args) < 2 {
		commands.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		commands.HandleVersion()
	case "help", "-h", "--help":
		commands.PrintUsage(os.Stdout)
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "list":
		if err := commands.HandleList(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		commands.PrintUsage(os.Stderr)
		os.Exit(1)
	}
}
