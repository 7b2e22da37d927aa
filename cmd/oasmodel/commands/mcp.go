package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasmodel/internal/mcpserver"
)

func newMCPCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the parse and convert tools over MCP on stdio",
		Long: "Run a Model Context Protocol server on stdin/stdout.\n\n" +
			"Diagnostics go to stderr at --log-level. Tool defaults follow the\n" +
			"persistent flags and OASMODEL_* variables.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.Run(cmd.Context(), app.cfg, app.logger)
		},
	}
}
