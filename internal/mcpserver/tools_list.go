package mcpserver

import (
	"context"

	"github.com/casetools/recase/caser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listInput struct {
	Sample string `json:"sample,omitempty" jsonschema:"Text rendered in each case; defaults to the RECASE_SAMPLE_TEXT setting"`
}

type caseSummary struct {
	Name      string `json:"name"`
	Pattern   string `json:"pattern"`
	Delimiter string `json:"delimiter"`
	Sample    string `json:"sample"`
}

type listOutput struct {
	Count int           `json:"count"`
	Cases []caseSummary `json:"cases,omitempty"`
}

func handleListCases(_ context.Context, _ *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listOutput, error) {
	sample := input.Sample
	if sample == "" {
		sample = cfg.SampleText
	}

	names := caseNames()
	output := listOutput{
		Count: len(names),
		Cases: makeSlice[caseSummary](len(names)),
	}
	for _, name := range names {
		c, err := resolveCase(name, nil)
		if err != nil {
			return errResult(err), listOutput{}, nil
		}
		output.Cases = append(output.Cases, caseSummary{
			Name:      name,
			Pattern:   c.Pattern.String(),
			Delimiter: c.Delimiter,
			Sample:    caser.To(sample, c),
		})
	}

	return nil, output, nil
}
