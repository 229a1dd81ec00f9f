// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes recase case conversion as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	recase "github.com/casetools/recase"
	"github.com/casetools/recase/caser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `recase MCP server — converts text between naming conventions (snake_case, camelCase, Title Case, tOGGLE cASE, aLtErNaTiNg, and more).

Configuration: defaults are configurable via RECASE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- RECASE_SAMPLE_TEXT (default: "My variable NAME") — sample text rendered by list_cases
- RECASE_CASES_FILE — path to a YAML file of custom case definitions loaded at startup

Custom cases: in addition to RECASE_CASES_FILE, the convert tool accepts inline definitions via cases_yaml. Inline definitions take precedence over startup definitions, which take precedence over built-ins.`

// customCases holds case definitions loaded from RECASE_CASES_FILE.
// Written once by Run before the server accepts requests.
var (
	customMu    sync.RWMutex
	customCases map[string]caser.Case
)

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CasesFile != "" {
		if err := loadCustomCases(cfg.CasesFile); err != nil {
			return fmt.Errorf("loading %s: %w", cfg.CasesFile, err)
		}
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "recase", Version: recase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text to a named case. Accepts any case name from list_cases plus custom definitions supplied inline via cases_yaml or loaded at startup from RECASE_CASES_FILE. Splitting recognizes spaces, underscores, hyphens, and camel humps, so input in any common convention converts cleanly.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_cases",
		Description: "List available case names with a sample rendering of each. Includes custom cases loaded from RECASE_CASES_FILE. Set sample to render your own text instead of the configured default.",
	}, handleListCases)
}

// loadCustomCases reads a YAML case definition file into customCases.
func loadCustomCases(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	logger := caser.NewSlogAdapter(slog.Default())
	loaded, err := caser.LoadCases(f, caser.WithLogger(logger))
	if err != nil {
		return err
	}

	customMu.Lock()
	customCases = loaded
	customMu.Unlock()
	return nil
}

// resolveCase finds a case by name, checking inline definitions first, then
// startup definitions from RECASE_CASES_FILE, then built-ins.
func resolveCase(name string, inline map[string]caser.Case) (caser.Case, error) {
	if c, ok := inline[name]; ok {
		return c, nil
	}
	customMu.RLock()
	c, ok := customCases[name]
	customMu.RUnlock()
	if ok {
		return c, nil
	}
	if c, ok := caser.ByName(name); ok {
		return c, nil
	}
	return caser.Case{}, fmt.Errorf("unknown case %q: valid cases: %v", name, caseNames())
}

// caseNames returns built-in names plus any startup custom definitions,
// sorted.
func caseNames() []string {
	names := caser.Names()
	customMu.RLock()
	for name := range customCases {
		names = append(names, name)
	}
	customMu.RUnlock()
	sort.Strings(names)
	return names
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
