package mcpserver

import (
	"context"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasmodel/parser"
)

type parseInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document to parse"`
	Strict *bool     `json:"strict,omitempty" jsonschema:"Fail on unknown fields instead of reporting warnings. Defaults to OASMODEL_STRICT."`
}

type parseSummaryServer struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type parseOutput struct {
	Version             string               `json:"version"`
	OASVersion          string               `json:"oas_version"`
	Title               string               `json:"title"`
	Description         string               `json:"description,omitempty"`
	Format              string               `json:"format"`
	PathCount           int                  `json:"path_count"`
	OperationCount      int                  `json:"operation_count"`
	SchemaCount         int                  `json:"schema_count"`
	SecuritySchemeCount int                  `json:"security_scheme_count"`
	SecuritySchemes     []string             `json:"security_schemes,omitempty"`
	ExtensionCount      int                  `json:"extension_count"`
	MaxSchemaDepth      int                  `json:"max_schema_depth"`
	Servers             []parseSummaryServer `json:"servers,omitempty"`
	Tags                []string             `json:"tags,omitempty"`
	Warnings            []string             `json:"warnings,omitempty"`
}

func (ts *toolset) handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	strict := ts.cfg.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}

	result, err := ts.resolve(input.Spec, strict)
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}
	return nil, summarize(result), nil
}

// summarize builds the tool output from a parse result.
func summarize(result *parser.ParseResult) parseOutput {
	doc := result.Document
	output := parseOutput{
		Version:             result.Version,
		OASVersion:          result.OASVersion.String(),
		Format:              string(result.SourceFormat),
		PathCount:           result.Stats.PathCount,
		OperationCount:      result.Stats.OperationCount,
		SchemaCount:         result.Stats.SchemaCount,
		SecuritySchemeCount: result.Stats.SecuritySchemeCount,
		ExtensionCount:      result.Stats.ExtensionCount,
		MaxSchemaDepth:      result.Stats.MaxSchemaDepth,
		Warnings:            result.Warnings,
	}

	if info := doc.Info(); info != nil {
		output.Title = info.Title
		output.Description = info.Description
	}

	var tags []*parser.Tag
	if v2, ok := doc.OAS2(); ok {
		tags = v2.Tags
		// OAS 2.0 has a single implicit server.
		if v2.Host != "" {
			output.Servers = []parseSummaryServer{{URL: v2.Host + v2.BasePath}}
		}
	}
	if v3, ok := doc.OAS3(); ok {
		tags = v3.Tags
		output.Servers = makeSlice[parseSummaryServer](len(v3.Servers))
		for _, s := range v3.Servers {
			if s != nil {
				output.Servers = append(output.Servers, parseSummaryServer{
					URL:         s.URL,
					Description: s.Description,
				})
			}
		}
	}
	output.Tags = makeSlice[string](len(tags))
	for _, tag := range tags {
		if tag != nil {
			output.Tags = append(output.Tags, tag.Name)
		}
	}

	schemes := doc.SecuritySchemes()
	output.SecuritySchemes = makeSlice[string](len(schemes))
	for name := range schemes {
		output.SecuritySchemes = append(output.SecuritySchemes, name)
	}
	slices.Sort(output.SecuritySchemes)

	return output
}
