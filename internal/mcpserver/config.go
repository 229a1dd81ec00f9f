package mcpserver

import (
	"log/slog"
	"os"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// SampleText is the default text rendered by list_cases.
	SampleText string

	// CasesFile optionally points at a YAML file of custom case
	// definitions loaded when the server starts.
	CasesFile string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from RECASE_* environment variables.
func loadConfig() *serverConfig {
	return &serverConfig{
		SampleText: envString("RECASE_SAMPLE_TEXT", "My variable NAME"),
		CasesFile:  envString("RECASE_CASES_FILE", ""),
	}
}

func envString(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if v == "" {
		slog.Warn("empty environment variable, using default", "key", key, "default", fallback)
		return fallback
	}
	return v
}
