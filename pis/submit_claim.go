package pis

import (
	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// SubmitClaim is used to pay out the pot of a finished poll to the voters of
// the winning tally. The payout accounts must be listed in tally order. No
// signature is required.
//
// Accounts: [poll, tally, clock, payout...]
type SubmitClaim struct{}

var submitClaimDesc = &Description{
	Name:    "wager/SubmitClaim",
	Command: record.SubmitClaimCommand,
}

func (c *SubmitClaim) Describe() *Description {
	return submitClaimDesc
}

func (c *SubmitClaim) Execute(ctx *Context) error {
	// get accounts
	accounts, err := ctx.Take(3)
	if err != nil {
		return err
	}

	// name accounts
	pollAccount := accounts[0]
	tallyAccount := accounts[1]
	clockAccount := accounts[2]
	payouts := ctx.Accounts[3:]

	// check accounts
	err = check(
		expectOwnedBy(pollAccount, ctx.Program),
		expectTag(pollAccount, record.PollTag),
		expectOwnedBy(tallyAccount, ctx.Program),
		expectTag(tallyAccount, record.TallyTag),
		expectKey(clockAccount, record.ClockAddress),
	)
	if err != nil {
		return err
	}

	// check funds, a claimed poll keeps a single lamport
	if pollAccount.Lamports <= 1 {
		return status.PollHasNoFunds
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
	if poll.Deadline > clock.Slot {
		return status.PollNotFinished
	}

	// check payout list
	if len(payouts) != tally.Count() {
		return status.InvalidPayoutList
	}

	// check winner
	winning, err := CheckWinningTally(poll, tallyAccount.Address)
	if err != nil {
		return err
	}

	// compute shares
	pot := pollAccount.Lamports - 1
	shares, err := PayoutShares(tally, pot, winning, payouts)
	if err != nil {
		return err
	}

	// freeze poll
	pollAccount.Lamports = 1

	// credit accounts
	credit(payouts, shares)

	return nil
}

func (c *SubmitClaim) Encode() ([]byte, error) {
	return []byte{byte(record.SubmitClaimCommand)}, nil
}

func (c *SubmitClaim) Decode([]byte) error {
	return nil
}
