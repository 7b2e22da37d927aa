package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasmodel/internal/cliutil"
	"github.com/erraggy/oasmodel/parser"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	InputFormat string
	JSON        bool
	Operations  bool
	Quiet       bool
}

// operationSummary is one row of the operation listing.
type operationSummary struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	OperationID string `json:"operation_id,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

// parseSummary is the machine-readable form of the parse report.
type parseSummary struct {
	Source     string               `json:"source"`
	Version    string               `json:"version"`
	OASVersion string               `json:"oas_version"`
	Format     string               `json:"format"`
	Title      string               `json:"title,omitempty"`
	APIVersion string               `json:"api_version,omitempty"`
	Stats      parser.DocumentStats `json:"stats"`
	Operations []operationSummary   `json:"operations,omitempty"`
	Warnings   []string             `json:"warnings,omitempty"`
}

func newParseCmd(app *appState) *cobra.Command {
	flags := &ParseFlags{}
	cmd := &cobra.Command{
		Use:   "parse [flags] <file|->",
		Short: "Parse a document and report its structure",
		Long: "Parse an OpenAPI 2.0 or 3.0.x document and print a summary.\n\n" +
			"Unknown fields are reported as warnings on stderr; with --strict they fail\n" +
			"the parse. Use '-' to read from stdin.\n\n" +
			"Exit Codes:\n" +
			"  0    Parsing successful\n" +
			"  1    Parsing failed",
		Example: "  oasmodel parse openapi.yaml\n" +
			"  oasmodel parse --operations --json swagger.json\n" +
			"  cat openapi.yaml | oasmodel parse -q --strict -",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runParse(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVar(&flags.InputFormat, "input-format", "", "Input format (json or yaml); detected when omitted")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the summary as JSON")
	cmd.Flags().BoolVar(&flags.Operations, "operations", false, "List every operation")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Print nothing on success")
	return cmd
}

func (a *appState) runParse(cmd *cobra.Command, specPath string, flags *ParseFlags) error {
	result, err := a.parseInput(cmd, specPath, flags.InputFormat)
	if err != nil {
		return err
	}

	// Warnings always go to stderr so stdout stays machine-readable.
	a.printWarnings(cmd.ErrOrStderr(), result.Warnings)
	if flags.Quiet {
		return nil
	}

	summary := summarize(specPath, result, flags.Operations)
	out := cmd.OutOrStdout()
	if flags.JSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		cliutil.Writef(out, "%s\n", data)
		return nil
	}

	cliutil.Writef(out, "OpenAPI Document Parser\n")
	cliutil.Writef(out, "=======================\n\n")
	OutputSpecHeader(out, specPath, result)
	OutputSpecStats(out, result)
	cliutil.Writef(out, "\n")
	if summary.Title != "" {
		cliutil.Writef(out, "Title: %s\n", summary.Title)
	}
	if summary.APIVersion != "" {
		cliutil.Writef(out, "Version: %s\n", summary.APIVersion)
	}
	if flags.Operations {
		writeOperations(out, summary.Operations)
	}
	cliutil.Writef(out, "\n%s\n", a.styler.OK("Parsing completed successfully!"))
	return nil
}

func summarize(specPath string, result *parser.ParseResult, withOperations bool) parseSummary {
	summary := parseSummary{
		Source:     FormatSpecPath(specPath),
		Version:    result.Version,
		OASVersion: result.OASVersion.String(),
		Format:     string(result.SourceFormat),
		Stats:      result.Stats,
		Warnings:   result.Warnings,
	}
	if info := result.Document.Info(); info != nil {
		summary.Title = info.Title
		summary.APIVersion = info.Version
	}
	if withOperations {
		summary.Operations = listOperations(result.Document.Paths())
	}
	return summary
}

// listOperations flattens paths in sorted path order, methods in the order
// a path item declares them.
func listOperations(paths parser.Paths) []operationSummary {
	upper := cases.Upper(language.Und)
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var ops []operationSummary
	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		byMethod := item.Operations()
		for _, method := range parser.OperationMethods() {
			op, ok := byMethod[method]
			if !ok {
				continue
			}
			ops = append(ops, operationSummary{
				Method:      upper.String(method),
				Path:        path,
				OperationID: op.OperationID,
				Deprecated:  op.Deprecated,
			})
		}
	}
	return ops
}

func writeOperations(w io.Writer, ops []operationSummary) {
	cliutil.Writef(w, "\nOperations:\n")
	for _, op := range ops {
		line := fmt.Sprintf("  %-7s %s", op.Method, op.Path)
		if op.OperationID != "" {
			line += " (" + op.OperationID + ")"
		}
		if op.Deprecated {
			line += " [deprecated]"
		}
		cliutil.Writef(w, "%s\n", line)
	}
}
