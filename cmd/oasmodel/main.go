package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasmodel/cmd/oasmodel/commands"
	"github.com/erraggy/oasmodel/internal/cliutil"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, err := commands.NewRootCmd()
	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := root.ExecuteContext(ctx); err != nil {
		styler := cliutil.NewStyler(os.Stderr, cliutil.ColorAuto)
		cliutil.Writef(os.Stderr, "%s %v\n", styler.Fail("Error:"), err)
		return 1
	}
	return 0
}
