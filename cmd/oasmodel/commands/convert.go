package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasmodel/internal/cliutil"
	"github.com/erraggy/oasmodel/parser"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	InputFormat string
	Output      string
	Quiet       bool
}

func newConvertCmd(app *appState) *cobra.Command {
	flags := &ConvertFlags{}
	cmd := &cobra.Command{
		Use:   "convert [flags] <file|->",
		Short: "Re-serialize a document as JSON or YAML",
		Long: "Parse an OpenAPI 2.0 or 3.0.x document and write it back in canonical\n" +
			"field order. The OAS version is kept; only the text format changes.\n\n" +
			"Output goes to stdout unless -o is given. --format defaults to\n" +
			"OASMODEL_OUTPUT_FORMAT and --indent to OASMODEL_INDENT.",
		Example: "  oasmodel convert --format json swagger.yaml\n" +
			"  oasmodel convert --format json --indent 0 openapi.yaml\n" +
			"  oasmodel convert -o openapi.yaml openapi.json",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runConvert(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&app.cfg.OutputFormat, "format", "f", app.cfg.OutputFormat, "Output format: json or yaml")
	cmd.Flags().IntVar(&app.cfg.Indent, "indent", app.cfg.Indent, "Spaces per JSON nesting level; 0 for compact")
	cmd.Flags().StringVar(&flags.InputFormat, "input-format", "", "Input format (json or yaml); detected when omitted")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress the confirmation on stderr")
	return cmd
}

func (a *appState) runConvert(cmd *cobra.Command, specPath string, flags *ConvertFlags) error {
	var outPath string
	if flags.Output != "" {
		var err error
		if outPath, err = cliutil.CheckOutputPath(flags.Output, specPath); err != nil {
			return err
		}
	}

	result, err := a.parseInput(cmd, specPath, flags.InputFormat)
	if err != nil {
		return err
	}
	a.printWarnings(cmd.ErrOrStderr(), result.Warnings)

	var data []byte
	switch a.cfg.Format() {
	case parser.SourceFormatJSON:
		data, err = parser.MarshalJSON(result.Document, a.cfg.IndentString())
		if err == nil && !strings.HasSuffix(string(data), "\n") {
			data = append(data, '\n')
		}
	default:
		data, err = parser.MarshalYAML(result.Document)
	}
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}

	if outPath == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if !flags.Quiet {
		cliutil.Writef(cmd.ErrOrStderr(), "%s %s (%s, %s)\n",
			a.styler.OK("Wrote"), outPath, a.cfg.Format(), parser.FormatBytes(int64(len(data))))
	}
	return nil
}
