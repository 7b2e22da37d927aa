package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasmodel/internal/cliutil"
	"github.com/erraggy/oasmodel/parser"
)

type convertInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document to convert"`
	Target string    `json:"target,omitempty" jsonschema:"Output format (json or yaml). Defaults to OASMODEL_OUTPUT_FORMAT."`
	Indent *int      `json:"indent,omitempty" jsonschema:"Spaces per JSON nesting level; 0 for compact. Defaults to OASMODEL_INDENT."`
	Strict *bool     `json:"strict,omitempty" jsonschema:"Fail on unknown fields instead of dropping them with a warning"`
	Output string    `json:"output,omitempty" jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
}

type convertOutput struct {
	Version      string   `json:"version"`
	SourceFormat string   `json:"source_format"`
	TargetFormat string   `json:"target_format"`
	Size         int      `json:"size"`
	Warnings     []string `json:"warnings,omitempty"`
	WrittenTo    string   `json:"written_to,omitempty"`
	Document     string   `json:"document,omitempty"`
}

func (ts *toolset) handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	target := ts.cfg.Format()
	if input.Target != "" {
		var err error
		if target, err = parser.ParseSourceFormat(input.Target); err != nil {
			return errResult(err), convertOutput{}, nil
		}
	}
	indent := ts.cfg.IndentString()
	if input.Indent != nil {
		if *input.Indent < 0 {
			return errResult(fmt.Errorf("indent cannot be negative")), convertOutput{}, nil
		}
		indent = strings.Repeat(" ", *input.Indent)
	}
	strict := ts.cfg.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}
	var outPath string
	if input.Output != "" {
		var err error
		if outPath, err = cliutil.CheckOutputPath(input.Output, input.Spec.File); err != nil {
			return errResult(err), convertOutput{}, nil
		}
	}

	result, err := ts.resolve(input.Spec, strict)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	var data []byte
	switch target {
	case parser.SourceFormatJSON:
		data, err = parser.MarshalJSON(result.Document, indent)
	default:
		data, err = parser.MarshalYAML(result.Document)
	}
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Version:      result.Version,
		SourceFormat: string(result.SourceFormat),
		TargetFormat: string(target),
		Size:         len(data),
		Warnings:     result.Warnings,
	}
	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = outPath
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}
