package pis

import (
	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// SubmitVote is used to wager the full balance of the voter account on the
// option of the provided tally. The wager is recorded for the payout account
// which will receive the share of the pot if the option wins.
//
// Accounts: [voter, poll, tally, payout, clock]
type SubmitVote struct{}

var submitVoteDesc = &Description{
	Name:    "wager/SubmitVote",
	Command: record.SubmitVoteCommand,
}

func (v *SubmitVote) Describe() *Description {
	return submitVoteDesc
}

func (v *SubmitVote) Execute(ctx *Context) error {
	// get accounts
	accounts, err := ctx.Take(5)
	if err != nil {
		return err
	}

	// name accounts
	voter := accounts[0]
	pollAccount := accounts[1]
	tallyAccount := accounts[2]
	payout := accounts[3]
	clockAccount := accounts[4]

	// check accounts
	err = check(
		expectSigned(voter),
		expectOwnedBy(voter, ctx.Program),
		expectOwnedBy(pollAccount, ctx.Program),
		expectTag(pollAccount, record.PollTag),
		expectOwnedBy(tallyAccount, ctx.Program),
		expectTag(tallyAccount, record.TallyTag),
		expectDistinct(voter, pollAccount, tallyAccount),
		expectKey(clockAccount, record.ClockAddress),
	)
	if err != nil {
		return err
	}

	// decode records
	clock, err := record.DecodeClock(clockAccount.Data)
	if err != nil {
		return err
	}
	poll, err := record.DecodePoll(pollAccount.Data)
	if err != nil {
		return err
	}
	tally, err := record.DecodeTally(tallyAccount.Data)
	if err != nil {
		return err
	}

	// check deadline
	if poll.Deadline < clock.Slot {
		return status.PollAlreadyFinished
	}

	// check funds
	wager := voter.Lamports
	if wager == 0 {
		return status.WagerHasNoFunds
	}

	// check wager
	_, err = CheckPollWager(poll, tallyAccount.Address, wager)
	if err != nil {
		return err
	}
	err = CheckTallyWager(tally, payout.Address)
	if err != nil {
		return err
	}

	// record wager
	err = RecordPollWager(poll, tallyAccount.Address, wager)
	if err != nil {
		return err
	}
	err = RecordTallyWager(tally, payout.Address, wager)
	if err != nil {
		return err
	}

	// move funds
	voter.Lamports = 0
	pollAccount.Lamports += wager

	return nil
}

func (v *SubmitVote) Encode() ([]byte, error) {
	return []byte{byte(record.SubmitVoteCommand)}, nil
}

func (v *SubmitVote) Decode([]byte) error {
	return nil
}
