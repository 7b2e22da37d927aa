// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasmodel parsing and serialization as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasmodel"
	"github.com/erraggy/oasmodel/internal/config"
	"github.com/erraggy/oasmodel/parser"
)

const serverInstructions = `oasmodel MCP server: parses OpenAPI 2.0 and 3.0.x documents into a typed model and re-serializes them as JSON or YAML.

Configuration: defaults come from OASMODEL_* environment variables set in your MCP client config.

Key settings:
- OASMODEL_STRICT (default: false): reject unknown fields instead of warning
- OASMODEL_MAX_DEPTH (default: 512): schema nesting limit
- OASMODEL_OUTPUT_FORMAT (default: yaml): default format for convert
- OASMODEL_INDENT (default: 2): JSON indent width, 0 for compact
- OASMODEL_LOG_LEVEL (default: warn): diagnostics written to stderr

Caching: parsed specs are cached per session. File entries are keyed by path and mtime; inline content by its SHA-256 digest.`

// toolset carries the settings and session cache the tool handlers share.
type toolset struct {
	cfg    *config.Config
	logger parser.Logger
	cache  *specCacheStore
}

func newToolset(cfg *config.Config, logger parser.Logger) *toolset {
	if logger == nil {
		logger = parser.NopLogger{}
	}
	return &toolset{cfg: cfg, logger: logger, cache: newSpecCache(defaultCacheSize)}
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger parser.Logger) error {
	ts := newToolset(cfg, logger)
	ts.logger.Info("starting MCP server", "server", oasmodel.UserAgent(), "strict", cfg.Strict, "max_depth", cfg.MaxDepth)
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasmodel", Version: oasmodel.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, ts)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server, ts *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI 2.0 or 3.0.x document. Returns a structural summary: title, version, OAS version family, path/operation/schema/security scheme counts, servers, tags, maximum schema depth, and any unknown-field warnings. Set strict=true to fail on unknown fields.",
	}, ts.handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Parse an OpenAPI 2.0 or 3.0.x document and re-serialize it as JSON or YAML in canonical field order. The OAS version is not changed. Use output to write to a file instead of returning inline.",
	}, ts.handleConvert)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
