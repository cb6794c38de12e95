package pis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/256dpi/wager/record"
)

var program = addr(0xee)

func addr(b byte) record.Address {
	var a record.Address
	for i := range a {
		a[i] = b
	}

	return a
}

func account(b byte, signer bool, lamports uint64, size int) *Account {
	return &Account{
		Address:  addr(b),
		Signer:   signer,
		Owner:    program,
		Lamports: lamports,
		Data:     make([]byte, size),
	}
}

func clockAt(slot uint64) *Account {
	data := make([]byte, record.ClockSize)
	err := record.EncodeClock(data, record.Clock{Slot: slot})
	if err != nil {
		panic(err)
	}

	return &Account{
		Address: record.ClockAddress,
		Data:    data,
	}
}

func encode(ins Instruction) []byte {
	data, err := ins.Encode()
	if err != nil {
		panic(err)
	}

	return data
}

func snapshot(accounts ...*Account) []Account {
	list := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		cp := *a
		cp.Data = append([]byte{}, a.Data...)
		list = append(list, cp)
	}

	return list
}

type env struct {
	creator    *Account
	collection *Account
	poll       *Account
	tallyA     *Account
	tallyB     *Account
}

func setup(t *testing.T, timeout uint32, slot uint64) *env {
	e := &env{
		creator:    account(1, true, 100, 0),
		collection: account(2, true, 0, record.MinCollectionSize+3*record.AddressLength),
		poll:       account(3, true, 1, 512),
		tallyA:     account(4, true, 0, record.MinTallySize+9*record.EntryLength),
		tallyB:     account(5, true, 0, record.MinTallySize+9*record.EntryLength),
	}

	err := Process(program, []*Account{e.collection}, encode(&InitCollection{}))
	assert.NoError(t, err)

	err = Process(program, []*Account{
		e.creator, e.poll, e.collection, e.tallyA, e.tallyB, clockAt(slot),
	}, encode(&InitPoll{
		PollParams: record.PollParams{
			Timeout: timeout,
			Header:  []byte("H"),
			OptionA: []byte("A"),
			OptionB: []byte("B"),
		},
	}))
	assert.NoError(t, err)

	return e
}

func (e *env) vote(tally *Account, voter, payout *Account, slot uint64) error {
	return Process(program, []*Account{
		voter, e.poll, tally, payout, clockAt(slot),
	}, encode(&SubmitVote{}))
}

func (e *env) claim(tally *Account, slot uint64, payouts ...*Account) error {
	return Process(program, append([]*Account{
		e.poll, tally, clockAt(slot),
	}, payouts...), encode(&SubmitClaim{}))
}

func (e *env) decodePoll(t *testing.T) *record.Poll {
	poll, err := record.DecodePoll(e.poll.Data)
	assert.NoError(t, err)
	return poll
}

func decodeTally(t *testing.T, a *Account) *record.Tally {
	tally, err := record.DecodeTally(a.Data)
	assert.NoError(t, err)
	return tally
}
