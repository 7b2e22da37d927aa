// Package commands provides the cobra command tree for oasmodel.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasmodel"
	"github.com/erraggy/oasmodel/internal/cliutil"
	"github.com/erraggy/oasmodel/internal/config"
	"github.com/erraggy/oasmodel/parser"
)

// appState is shared by every subcommand. Flags write straight into cfg,
// so a flag overrides the matching OASMODEL_* variable.
type appState struct {
	cfg    *config.Config
	color  string
	logger parser.Logger
	styler *cliutil.Styler
}

func (a *appState) initFromFlags(cmd *cobra.Command) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	mode, ok := cliutil.ParseColorMode(a.color)
	if !ok {
		return fmt.Errorf("invalid --color %q (expected auto, always or never)", a.color)
	}
	a.styler = cliutil.NewStyler(cmd.ErrOrStderr(), mode)
	a.logger = a.cfg.NewLogger(cmd.ErrOrStderr())
	return nil
}

// parserOptions returns the parse settings plus any extra options.
func (a *appState) parserOptions(extra ...parser.Option) []parser.Option {
	return append(a.cfg.ParserOptions(a.logger), extra...)
}

// NewRootCmd builds the command tree. Defaults come from the environment.
func NewRootCmd() (*cobra.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	app := &appState{cfg: cfg, color: string(cliutil.ColorAuto)}

	root := &cobra.Command{
		Use:   "oasmodel",
		Short: "Parse and re-serialize OpenAPI 2.0 and 3.0.x documents",
		Long: "oasmodel reads OpenAPI (Swagger) 2.0 and 3.0.x documents in JSON or YAML into a\n" +
			"typed model and writes them back in canonical field order.\n\n" +
			"Configuration:\n" +
			"  Every persistent flag has an OASMODEL_* environment variable, e.g.\n" +
			"  OASMODEL_LOG_LEVEL=debug or OASMODEL_STRICT=true. Flags win.\n\n" +
			"Examples:\n" +
			"  oasmodel parse openapi.yaml\n" +
			"  oasmodel convert --format json --indent 4 swagger.yaml\n" +
			"  cat openapi.json | oasmodel convert -o openapi.yaml -\n",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initFromFlags(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.cfg.LogLevel, "log-level", app.cfg.LogLevel, "Diagnostic log level: debug, info, warn or error")
	flags.BoolVar(&app.cfg.Strict, "strict", app.cfg.Strict, "Fail on unknown fields instead of warning")
	flags.IntVar(&app.cfg.MaxDepth, "max-depth", app.cfg.MaxDepth, "Maximum schema nesting depth (0 for the default)")
	flags.StringVar(&app.color, "color", app.color, "Color diagnostics: auto, always or never")

	root.SetVersionTemplate("{{.Version}}\n")
	root.Version = oasmodel.Version()

	root.AddCommand(newParseCmd(app))
	root.AddCommand(newConvertCmd(app))
	root.AddCommand(newMCPCmd(app))
	root.AddCommand(newVersionCmd())

	return root, nil
}
