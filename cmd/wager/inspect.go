package main

import (
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/256dpi/wager"
	"github.com/256dpi/wager/pis"
	"github.com/256dpi/wager/record"
)

type accountView struct {
	Address  string
	Owner    string
	Lamports uint64
	Size     int
	Type     string
	Record   interface{}
}

type pollView struct {
	Creator  string
	Deadline uint64
	Header   string
	Options  [2]optionView
}

type optionView struct {
	Text     string
	Tally    string
	Quantity uint64
}

type entryView struct {
	Voter string
	Wager uint64
}

type collectionView struct {
	Capacity int
	Polls    []string
}

type tallyView struct {
	Capacity int
	Entries  []entryView
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <address>",
		Short: "Decode and print the record stored in an account.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// parse address
			address, err := record.ParseAddress(args[0])
			if err != nil {
				return err
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

			// open bank
			bank, err := wager.CreateBank(db, wager.BankConfig{})
			if err != nil {
				return err
			}

			// get account
			account, err := bank.Lookup(address)
			if err != nil {
				return err
			}

			// describe account
			view, err := describe(account)
			if err != nil {
				return err
			}

			_, err = pretty.Fprintf(cmd.OutOrStdout(), "%# v\n", view)
			return err
		},
	}
}

func describe(account *pis.Account) (*accountView, error) {
	// prepare view
	view := &accountView{
		Address:  account.Address.String(),
		Owner:    account.Owner.String(),
		Lamports: account.Lamports,
		Size:     len(account.Data),
	}

	// handle clock
	if account.Address == record.ClockAddress {
		clock, err := record.DecodeClock(account.Data)
		if err != nil {
			return nil, err
		}
		view.Type = "Clock"
		view.Record = clock
		return view, nil
	}

	// handle empty accounts
	if len(account.Data) == 0 {
		view.Type = "None"
		return view, nil
	}

	// read tag
	tag, err := record.ReadTag(account.Data)
	if err != nil {
		return nil, err
	}
	view.Type = tag.String()

	// decode record
	switch tag {
	case record.CollectionTag:
		collection, err := record.DecodeCollection(account.Data)
		if err != nil {
			return nil, err
		}
		cv := collectionView{Capacity: collection.Capacity()}
		for _, poll := range collection.Polls() {
			cv.Polls = append(cv.Polls, poll.String())
		}
		view.Record = cv
	case record.PollTag:
		poll, err := record.DecodePoll(account.Data)
		if err != nil {
			return nil, err
		}
		pv := pollView{
			Creator:  poll.Creator.String(),
			Deadline: poll.Deadline,
			Header:   string(poll.Header),
		}
		for i, option := range poll.Options {
			pv.Options[i] = optionView{
				Text:     string(option.Text),
				Tally:    option.Tally.String(),
				Quantity: option.Quantity,
			}
		}
		view.Record = pv
	case record.TallyTag:
		tally, err := record.DecodeTally(account.Data)
		if err != nil {
			return nil, err
		}
		tv := tallyView{Capacity: tally.Capacity()}
		for _, entry := range tally.Entries() {
			tv.Entries = append(tv.Entries, entryView{
				Voter: entry.Voter.String(),
				Wager: entry.Wager,
			})
		}
		view.Record = tv
	case record.Unset:
	default:
		return nil, errors.Errorf("unknown record type %s", tag)
	}

	return view, nil
}
