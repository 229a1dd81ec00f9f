package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/casetools/recase/caser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Text      string `json:"text"                 jsonschema:"The text to convert"`
	Case      string `json:"case"                 jsonschema:"Target case name (see list_cases)"`
	CasesYAML string `json:"cases_yaml,omitempty" jsonschema:"Inline YAML case definitions; names defined here are usable in the case field and shadow built-ins"`
}

type convertOutput struct {
	Case   string `json:"case"`
	Output string `json:"output"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if input.Case == "" {
		return errResult(fmt.Errorf("case is required: valid cases: %v", caseNames())), convertOutput{}, nil
	}

	var inline map[string]caser.Case
	if input.CasesYAML != "" {
		loaded, err := caser.LoadCases(strings.NewReader(input.CasesYAML))
		if err != nil {
			return errResult(fmt.Errorf("parsing cases_yaml: %w", err)), convertOutput{}, nil
		}
		inline = loaded
	}

	c, err := resolveCase(input.Case, inline)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{
		Case:   input.Case,
		Output: caser.To(input.Text, c),
	}, nil
}
