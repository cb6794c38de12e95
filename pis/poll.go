package pis

import (
	"math"

	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// CheckPollWager will verify that the wager can be recorded for the option
// identified by its tally and return the option side.
func CheckPollWager(poll *record.Poll, tally record.Address, wager uint64) (record.Side, error) {
	// select option
	side, ok := poll.Select(tally)
	if !ok {
		return 0, status.InvalidTallyKey
	}

	// get options
	selected := poll.Options[side]
	unselected := poll.Options[side.Other()]

	// check overflow
	if selected.Quantity > math.MaxUint64-wager {
		return 0, status.InvalidInput
	}

	// a tie would leave the poll without a winner
	if selected.Quantity+wager == unselected.Quantity {
		return 0, status.PollCannotBeEven
	}

	return side, nil
}

// RecordPollWager will add the wager to the option identified by its tally.
func RecordPollWager(poll *record.Poll, tally record.Address, wager uint64) error {
	// check wager
	side, err := CheckPollWager(poll, tally, wager)
	if err != nil {
		return err
	}

	// update quantity
	poll.SetQuantity(side, poll.Options[side].Quantity+wager)

	return nil
}

// CheckWinningTally will return the quantity of the option identified by its
// tally if it received strictly more than the other option.
func CheckWinningTally(poll *record.Poll, tally record.Address) (uint64, error) {
	// select option
	side, ok := poll.Select(tally)
	if !ok {
		return 0, status.InvalidTallyKey
	}

	// compare quantities
	selected := poll.Options[side].Quantity
	if selected <= poll.Options[side.Other()].Quantity {
		return 0, status.CannotPayoutToLosers
	}

	return selected, nil
}
