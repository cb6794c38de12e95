package main

import (
	"crypto/sha256"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/256dpi/wager"
	"github.com/256dpi/wager/pis"
	"github.com/256dpi/wager/record"
)

var programID = named("program")

func named(name string) record.Address {
	return sha256.Sum256([]byte("wager:" + name))
}

type seed struct {
	address  record.Address
	owner    record.Address
	lamports uint64
	size     int
}

type vote struct {
	name  string
	side  record.Side
	wager uint64
}

var demoVotes = []vote{
	{name: "alice", side: record.SideA, wager: 10},
	{name: "bob", side: record.SideA, wager: 20},
	{name: "carol", side: record.SideA, wager: 30},
	{name: "dave", side: record.SideB, wager: 5},
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Create a poll, place wagers and claim the pot in a fresh database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// setup
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			// open db
			db, err := wager.OpenDB(cfg.Dir)
			if err != nil {
				return err
			}
			defer db.Close()

			return runDemo(cmd, db, logger)
		},
	}
}

func runDemo(cmd *cobra.Command, db *wager.DB, logger zerolog.Logger) error {
	// create bank and journal
	bank, err := wager.CreateBank(db, wager.BankConfig{})
	if err != nil {
		return err
	}
	journal, err := wager.CreateJournal(db, wager.JournalConfig{})
	if err != nil {
		return err
	}

	// follow journal
	receipts := make(chan wager.Receipt, len(demoVotes)+3)
	reader := wager.NewReader(journal, wager.ReaderConfig{
		Start:    journal.Head() + 1,
		Receipts: receipts,
		Batch:    len(demoVotes) + 3,
	})
	defer reader.Close()

	// create processor
	metrics := wager.NewMetrics(prometheus.NewRegistry())
	processor := wager.NewProcessor(pis.NewProgram(programID, logger), bank, journal, wager.ProcessorConfig{
		Logger:  logger,
		Metrics: metrics,
	})
	defer processor.Close()

	// prepare addresses
	creator := named("creator")
	collection := named("collection")
	poll := named("poll")
	tallies := [2]record.Address{named("tally-a"), named("tally-b")}

	// create accounts
	tallySize := record.MinTallySize + (len(demoVotes)-1)*record.EntryLength
	params := record.PollParams{
		Timeout: 10,
		Header:  []byte("Will it rain tomorrow?"),
		OptionA: []byte("yes"),
		OptionB: []byte("no"),
	}
	accounts := []seed{
		{creator, record.Address{}, 100, 0},
		{collection, programID, 0, record.MinCollectionSize + 7*record.AddressLength},
		{poll, programID, 1, record.PollSize(len(params.Header), len(params.OptionA), len(params.OptionB))},
		{tallies[0], programID, 0, tallySize},
		{tallies[1], programID, 0, tallySize},
	}
	for _, v := range demoVotes {
		accounts = append(accounts,
			seed{named(v.name), programID, v.wager, 0},
			seed{named(v.name + "-payout"), record.Address{}, 0, 0},
		)
	}
	for _, a := range accounts {
		err = bank.Create(a.address, a.owner, a.lamports, a.size)
		if err != nil {
			return errors.Wrap(err, "the demo requires a fresh directory")
		}
	}

	// create collection and poll
	_, err = processor.Execute(wager.InitCollectionTx(collection))
	if err != nil {
		return errors.Wrap(err, "init collection")
	}
	_, err = processor.Execute(wager.InitPollTx(creator, poll, collection, tallies[0], tallies[1], params))
	if err != nil {
		return errors.Wrap(err, "init poll")
	}

	// place wagers
	for _, v := range demoVotes {
		_, err = processor.Execute(wager.SubmitVoteTx(named(v.name), poll, tallies[v.side], named(v.name+"-payout")))
		if err != nil {
			return errors.Wrapf(err, "vote %s", v.name)
		}
	}

	// finish poll
	_, err = bank.Advance(uint64(params.Timeout))
	if err != nil {
		return err
	}

	// claim pot
	var winners []record.Address
	for _, v := range demoVotes {
		if v.side == record.SideA {
			winners = append(winners, named(v.name+"-payout"))
		}
	}
	_, err = processor.Execute(wager.SubmitClaimTx(poll, tallies[record.SideA], winners...))
	if err != nil {
		return errors.Wrap(err, "claim")
	}

	// print receipts
	out := cmd.OutOrStdout()
	for i := 0; i < len(demoVotes)+3; i++ {
		receipt := <-receipts
		fmt.Fprintf(out, "%4d  slot %-4d %s\n", receipt.Sequence, receipt.Slot, receipt.Command)
	}
	fmt.Fprintln(out)

	// print accounts
	fmt.Fprintf(out, "program     %s\n", programID)
	fmt.Fprintf(out, "collection  %s\n", collection)
	fmt.Fprintf(out, "poll        %s\n", poll)
	fmt.Fprintf(out, "tally a     %s\n", tallies[0])
	fmt.Fprintf(out, "tally b     %s\n", tallies[1])
	fmt.Fprintln(out)
	for _, v := range demoVotes {
		account, err := bank.Lookup(named(v.name + "-payout"))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-6s %s wagered %3d received %3d\n", v.name, v.side, v.wager, account.Lamports)
	}

	return nil
}
