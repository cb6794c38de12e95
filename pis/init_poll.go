package pis

import (
	"math"

	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// InitPoll is used to create a poll and its two tallies and register the poll
// in a collection.
//
// Accounts: [creator, poll, collection, tally a, tally b, clock]
type InitPoll struct {
	record.PollParams
}

var initPollDesc = &Description{
	Name:    "wager/InitPoll",
	Command: record.InitPollCommand,
}

func (i *InitPoll) Describe() *Description {
	return initPollDesc
}

func (i *InitPoll) Execute(ctx *Context) error {
	// get accounts
	accounts, err := ctx.Take(6)
	if err != nil {
		return err
	}

	// name accounts
	creator := accounts[0]
	pollAccount := accounts[1]
	collectionAccount := accounts[2]
	tallyA := accounts[3]
	tallyB := accounts[4]
	clockAccount := accounts[5]

	// check accounts
	err = check(
		expectSigned(creator),
		expectSigned(pollAccount),
		expectOwnedBy(pollAccount, ctx.Program),
		expectNew(pollAccount),
		expectOwnedBy(collectionAccount, ctx.Program),
		expectTag(collectionAccount, record.CollectionTag),
		expectSigned(tallyA),
		expectOwnedBy(tallyA, ctx.Program),
		expectMinSize(tallyA, record.MinTallySize),
		expectNew(tallyA),
		expectSigned(tallyB),
		expectOwnedBy(tallyB, ctx.Program),
		expectMinSize(tallyB, record.MinTallySize),
		expectNew(tallyB),
		expectDistinct(pollAccount, tallyA, tallyB),
		expectKey(clockAccount, record.ClockAddress),
	)
	if err != nil {
		return err
	}

	// decode clock
	clock, err := record.DecodeClock(clockAccount.Data)
	if err != nil {
		return err
	}

	// check params
	err = check(
		expectPresent(i.Header),
		expectPresent(i.OptionA),
		expectPresent(i.OptionB),
	)
	if err != nil {
		return err
	}

	// check deadline
	if clock.Slot > math.MaxUint64-uint64(i.Timeout) {
		return status.InvalidInput
	}

	// prepare poll
	poll := &record.Poll{
		Creator:  creator.Address,
		Deadline: clock.Slot + uint64(i.Timeout),
		Header:   i.Header,
		Options: [2]record.Option{
			{Text: i.OptionA, Tally: tallyA.Address},
			{Text: i.OptionB, Tally: tallyB.Address},
		},
	}

	// check poll size
	err = expectMinSize(pollAccount, poll.Size())
	if err != nil {
		return err
	}

	// decode collection
	collection, err := record.DecodeCollection(collectionAccount.Data)
	if err != nil {
		return err
	}

	// register poll, the collection is untouched on failure
	err = AddPoll(collection, pollAccount.Address)
	if err != nil {
		return err
	}

	// write poll
	err = record.EncodePoll(pollAccount.Data, poll)
	if err != nil {
		return err
	}

	// tag tallies
	err = record.InitTally(tallyA.Data)
	if err != nil {
		return err
	}
	err = record.InitTally(tallyB.Data)
	if err != nil {
		return err
	}

	return nil
}

func (i *InitPoll) Encode() ([]byte, error) {
	return append([]byte{byte(record.InitPollCommand)}, i.PollParams.Encode()...), nil
}

func (i *InitPoll) Decode(payload []byte) error {
	return i.PollParams.Decode(payload)
}
