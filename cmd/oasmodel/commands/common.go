package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasmodel"
	"github.com/erraggy/oasmodel/internal/cliutil"
	"github.com/erraggy/oasmodel/parser"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// parseInput parses specPath, or the command's stdin for "-". inputFormat
// may be empty to detect the format.
func (a *appState) parseInput(cmd *cobra.Command, specPath, inputFormat string) (*parser.ParseResult, error) {
	var opts []parser.Option
	if inputFormat != "" {
		format, err := parser.ParseSourceFormat(inputFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, parser.WithFormat(format))
	}

	if specPath == StdinFilePath {
		opts = append(opts, parser.WithReader(cmd.InOrStdin()), parser.WithSourceName("<stdin>"))
		result, err := parser.ParseWithOptions(a.parserOptions(opts...)...)
		if err != nil {
			return nil, fmt.Errorf("parsing stdin: %w", err)
		}
		return result, nil
	}

	opts = append(opts, parser.WithFilePath(specPath))
	result, err := parser.ParseWithOptions(a.parserOptions(opts...)...)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	return result, nil
}

// printWarnings lists unknown-field warnings on w.
func (a *appState) printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	cliutil.Writef(w, "%s\n", a.styler.Warn("Warnings:"))
	for _, warning := range warnings {
		cliutil.Writef(w, "  - %s\n", warning)
	}
	cliutil.Writef(w, "\n")
}

// OutputSpecHeader writes the common specification header.
// This includes oasmodel version, specification path, and OAS version.
func OutputSpecHeader(w io.Writer, specPath string, result *parser.ParseResult) {
	cliutil.Writef(w, "oasmodel version: %s\n", oasmodel.Version())
	cliutil.Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(w, "OAS Version: %s (%s)\n", result.Version, result.OASVersion)
	cliutil.Writef(w, "Source Format: %s\n", result.SourceFormat)
}

// OutputSpecStats writes the common specification statistics.
func OutputSpecStats(w io.Writer, result *parser.ParseResult) {
	stats := result.Stats
	cliutil.Writef(w, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	cliutil.Writef(w, "Paths: %d\n", stats.PathCount)
	cliutil.Writef(w, "Operations: %d\n", stats.OperationCount)
	cliutil.Writef(w, "Schemas: %d\n", stats.SchemaCount)
	cliutil.Writef(w, "Max Schema Depth: %d\n", stats.MaxSchemaDepth)
	cliutil.Writef(w, "Security Schemes: %d\n", stats.SecuritySchemeCount)
	cliutil.Writef(w, "Parameters: %d inline, %d by reference\n", stats.InlineParameterCount, stats.ParameterRefCount)
	cliutil.Writef(w, "Extensions: %d\n", stats.ExtensionCount)
	cliutil.Writef(w, "Load Time: %v\n", result.LoadTime)
}
