package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/256dpi/wager"
)

func newJournalCmd() *cobra.Command {
	var from uint64
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List the receipts of executed transactions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// check limit
			if limit <= 0 {
				return errors.Errorf("invalid limit %d", limit)
			}

			// setup
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}

			// open db
			db, err := wager.OpenDB(cfg.Dir)
			if err != nil {
				return err
			}
			defer db.Close()

			// open journal
			journal, err := wager.CreateJournal(db, wager.JournalConfig{})
			if err != nil {
				return err
			}

			// read receipts
			receipts, err := journal.Read(from, limit)
			if err != nil {
				return err
			}

			// print receipts
			out := cmd.OutOrStdout()
			for _, receipt := range receipts {
				result := "ok"
				if receipt.Status != 0 {
					result = receipt.Status.Name()
				} else if receipt.Error != "" {
					result = receipt.Error
				}
				fmt.Fprintf(out, "%4d  slot %-4d %-15s %s\n", receipt.Sequence, receipt.Slot, receipt.Command, result)
			}

			return nil
		},
	}

	cmd.Flags().Uint64Var(&from, "from", 1, "the first sequence to list")
	cmd.Flags().IntVar(&limit, "limit", 100, "the maximum number of receipts")

	return cmd
}
