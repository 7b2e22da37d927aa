package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasmodel"
	"github.com/erraggy/oasmodel/internal/cliutil"
)

func newVersionCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if verbose {
				cliutil.Writef(cmd.OutOrStdout(), "%s", oasmodel.BuildInfo())
				return
			}
			cliutil.Writef(cmd.OutOrStdout(), "oasmodel v%s\n", oasmodel.Version())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include commit, build time and Go version")
	return cmd
}
