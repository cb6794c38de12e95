package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// create root
	root := &cobra.Command{
		Use:           "wager",
		Short:         "Run and inspect a local binary prediction market.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// add flags
	addFlags(root)

	// add commands
	root.AddCommand(newDemoCmd(), newInspectCmd(), newJournalCmd())

	return root
}
