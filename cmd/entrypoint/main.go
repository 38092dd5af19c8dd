package main

import (
	"context"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := execute(context.Background(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command on args. Cobra claims its hidden completion
// commands before RunE sees them, so those tokens skip cobra and go to the
// container command like any other.
func execute(ctx context.Context, args []string) error {
	if len(args) > 0 && slices.Contains([]string{cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd}, args[0]) {
		rootCmd.SetContext(ctx)
		return rootCmd.RunE(rootCmd, args)
	}
	if args == nil {
		args = []string{} // nil makes cobra read os.Args
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
