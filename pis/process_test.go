package pis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

func TestDecode(t *testing.T) {
	ins, err := Decode(encode(&InitPoll{
		PollParams: record.PollParams{
			Timeout: 5,
			Header:  []byte("H"),
			OptionA: []byte("A"),
			OptionB: []byte("B"),
		},
	}))
	assert.NoError(t, err)
	assert.Equal(t, "wager/InitPoll", ins.Describe().Name)
	assert.Equal(t, uint32(5), ins.(*InitPoll).Timeout)

	for _, ins := range []Instruction{&InitCollection{}, &SubmitVote{}, &SubmitClaim{}} {
		decoded, err := Decode(encode(ins))
		assert.NoError(t, err)
		assert.Equal(t, ins.Describe(), decoded.Describe())
	}

	_, err = Decode([]byte{4})
	assert.Equal(t, status.InvalidCommand, err)

	_, err = Decode(nil)
	assert.Equal(t, status.InvalidCommand, err)

	_, err = Decode([]byte{1, 0, 0})
	assert.Equal(t, status.InvalidInput, err)
}

func TestInitCollection(t *testing.T) {
	data := encode(&InitCollection{})

	err := Process(program, nil, data)
	assert.Equal(t, status.NotEnoughAccounts, err)

	collection := account(2, false, 0, record.MinCollectionSize)
	err = Process(program, []*Account{collection}, data)
	assert.Equal(t, status.MissingSigner, err)

	collection = account(2, true, 0, record.MinCollectionSize)
	collection.Owner = addr(9)
	err = Process(program, []*Account{collection}, data)
	assert.Equal(t, status.InvalidAccount, err)

	collection = account(2, true, 0, record.MinCollectionSize-1)
	err = Process(program, []*Account{collection}, data)
	assert.Equal(t, status.AccountDataTooSmall, err)

	collection = account(2, true, 0, record.MinCollectionSize+record.AddressLength*4+3)
	err = Process(program, []*Account{collection}, data)
	assert.NoError(t, err)

	c, err := record.DecodeCollection(collection.Data)
	assert.NoError(t, err)
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 5, c.Capacity())

	err = Process(program, []*Account{collection}, data)
	assert.Equal(t, status.AccountNotNew, err)
}

func TestInitPoll(t *testing.T) {
	e := setup(t, 10, 100)

	poll := e.decodePoll(t)
	assert.Equal(t, e.creator.Address, poll.Creator)
	assert.Equal(t, uint64(110), poll.Deadline)
	assert.Equal(t, []byte("H"), poll.Header)
	assert.Equal(t, record.Option{Text: []byte("A"), Tally: e.tallyA.Address}, poll.Options[record.SideA])
	assert.Equal(t, record.Option{Text: []byte("B"), Tally: e.tallyB.Address}, poll.Options[record.SideB])

	assert.Equal(t, 0, decodeTally(t, e.tallyA).Count())
	assert.Equal(t, 0, decodeTally(t, e.tallyB).Count())

	collection, err := record.DecodeCollection(e.collection.Data)
	assert.NoError(t, err)
	assert.Equal(t, []record.Address{e.poll.Address}, collection.Polls())
}

func TestInitPollChecks(t *testing.T) {
	params := record.PollParams{
		Timeout: 10,
		Header:  []byte("H"),
		OptionA: []byte("A"),
		OptionB: []byte("B"),
	}

	type accounts struct {
		creator, poll, collection, tallyA, tallyB, clock *Account
	}

	prepare := func() *accounts {
		a := &accounts{
			creator:    account(1, true, 100, 0),
			collection: account(2, true, 0, record.MinCollectionSize),
			poll:       account(3, true, 1, 512),
			tallyA:     account(4, true, 0, record.MinTallySize),
			tallyB:     account(5, true, 0, record.MinTallySize),
			clock:      clockAt(0),
		}
		assert.NoError(t, Process(program, []*Account{a.collection}, encode(&InitCollection{})))
		return a
	}

	table := []struct {
		name   string
		modify func(*accounts, *record.PollParams)
		err    error
	}{
		{"creator signer", func(a *accounts, _ *record.PollParams) { a.creator.Signer = false }, status.MissingSigner},
		{"poll signer", func(a *accounts, _ *record.PollParams) { a.poll.Signer = false }, status.MissingSigner},
		{"poll owner", func(a *accounts, _ *record.PollParams) { a.poll.Owner = addr(9) }, status.InvalidAccount},
		{"poll new", func(a *accounts, _ *record.PollParams) { a.poll.Data[0] = 2 }, status.AccountNotNew},
		{"collection owner", func(a *accounts, _ *record.PollParams) { a.collection.Owner = addr(9) }, status.InvalidAccount},
		{"collection tag", func(a *accounts, _ *record.PollParams) { a.collection.Data[0] = 3 }, status.InvalidDataType},
		{"tally signer", func(a *accounts, _ *record.PollParams) { a.tallyB.Signer = false }, status.MissingSigner},
		{"tally owner", func(a *accounts, _ *record.PollParams) { a.tallyA.Owner = addr(9) }, status.InvalidAccount},
		{"tally size", func(a *accounts, _ *record.PollParams) { a.tallyA.Data = a.tallyA.Data[:10] }, status.AccountDataTooSmall},
		{"tally new", func(a *accounts, _ *record.PollParams) { a.tallyB.Data[0] = 3 }, status.AccountNotNew},
		{"same tallies", func(a *accounts, _ *record.PollParams) { a.tallyB.Address = a.tallyA.Address }, status.InvalidAccount},
		{"poll as tally", func(a *accounts, _ *record.PollParams) { a.tallyA.Address = a.poll.Address }, status.InvalidAccount},
		{"clock key", func(a *accounts, _ *record.PollParams) { a.clock.Address = addr(9) }, status.InvalidKey},
		{"clock data", func(a *accounts, _ *record.PollParams) { a.clock.Data = nil }, status.AccountDataTooSmall},
		{"empty header", func(_ *accounts, p *record.PollParams) { p.Header = nil }, status.InvalidInput},
		{"empty option a", func(_ *accounts, p *record.PollParams) { p.OptionA = nil }, status.InvalidInput},
		{"empty option b", func(_ *accounts, p *record.PollParams) { p.OptionB = nil }, status.InvalidInput},
		{"poll size", func(a *accounts, _ *record.PollParams) { a.poll.Data = a.poll.Data[:100] }, status.AccountDataTooSmall},
	}

	for _, item := range table {
		a := prepare()
		p := params
		item.modify(a, &p)

		list := []*Account{a.creator, a.poll, a.collection, a.tallyA, a.tallyB, a.clock}
		before := snapshot(list...)

		err := Process(program, list, encode(&InitPoll{PollParams: p}))
		assert.Equal(t, item.err, err, item.name)
		assert.Equal(t, before, snapshot(list...), item.name)
	}

	err := Process(program, []*Account{account(1, true, 0, 0)}, encode(&InitPoll{PollParams: params}))
	assert.Equal(t, status.NotEnoughAccounts, err)
}

func TestInitPollCollection(t *testing.T) {
	e := setup(t, 10, 0)

	create := func(poll byte) error {
		return Process(program, []*Account{
			e.creator,
			account(poll, true, 1, 512),
			e.collection,
			account(poll+100, true, 0, record.MinTallySize),
			account(poll+101, true, 0, record.MinTallySize),
			clockAt(0),
		}, encode(&InitPoll{
			PollParams: record.PollParams{
				Timeout: 1,
				Header:  []byte("H"),
				OptionA: []byte("A"),
				OptionB: []byte("B"),
			},
		}))
	}

	// duplicate

	err := create(e.poll.Address[0])
	assert.Equal(t, status.PollAlreadyCreated, err)

	// fill

	assert.NoError(t, create(20))
	assert.NoError(t, create(21))
	assert.NoError(t, create(22))

	// full

	before := snapshot(e.collection)
	err = create(23)
	assert.Equal(t, status.MaxPollCapacity, err)
	assert.Equal(t, before, snapshot(e.collection))
}

func TestSubmitVote(t *testing.T) {
	e := setup(t, 10, 100)

	voter := account(20, true, 10, 0)
	payout := account(30, false, 0, 0)

	err := e.vote(e.tallyA, voter, payout, 110)
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), voter.Lamports)
	assert.Equal(t, uint64(11), e.poll.Lamports)
	assert.Equal(t, uint64(10), e.decodePoll(t).Options[record.SideA].Quantity)
	assert.Equal(t, []record.Entry{{Voter: payout.Address, Wager: 10}}, decodeTally(t, e.tallyA).Entries())

	// accumulate

	voter.Lamports = 7
	err = e.vote(e.tallyA, voter, payout, 105)
	assert.NoError(t, err)
	assert.Equal(t, uint64(18), e.poll.Lamports)
	assert.Equal(t, []record.Entry{{Voter: payout.Address, Wager: 17}}, decodeTally(t, e.tallyA).Entries())

	// finished

	voter.Lamports = 5
	err = e.vote(e.tallyA, voter, payout, 111)
	assert.Equal(t, status.PollAlreadyFinished, err)
	assert.Equal(t, uint64(5), voter.Lamports)

	// no funds

	voter.Lamports = 0
	err = e.vote(e.tallyA, voter, payout, 100)
	assert.Equal(t, status.WagerHasNoFunds, err)

	// even

	voter.Lamports = 17
	before := snapshot(voter, e.poll, e.tallyB)
	err = e.vote(e.tallyB, voter, payout, 100)
	assert.Equal(t, status.PollCannotBeEven, err)
	assert.Equal(t, before, snapshot(voter, e.poll, e.tallyB))
}

func TestSubmitVoteChecks(t *testing.T) {
	e := setup(t, 10, 0)
	payout := account(30, false, 0, 0)

	voter := account(20, false, 10, 0)
	assert.Equal(t, status.MissingSigner, e.vote(e.tallyA, voter, payout, 0))

	voter = account(20, true, 10, 0)
	voter.Owner = addr(9)
	assert.Equal(t, status.InvalidAccount, e.vote(e.tallyA, voter, payout, 0))

	voter = account(20, true, 10, 0)
	assert.Equal(t, status.InvalidDataType, e.vote(e.collection, voter, payout, 0))

	stranger := account(40, true, 0, record.MinTallySize)
	assert.NoError(t, record.InitTally(stranger.Data))
	assert.Equal(t, status.InvalidTallyKey, e.vote(stranger, voter, payout, 0))

	assert.Equal(t, status.InvalidAccount, e.vote(e.tallyA, e.poll, payout, 0))

	err := Process(program, []*Account{voter, e.poll, e.tallyA, payout, account(9, false, 0, 8)}, encode(&SubmitVote{}))
	assert.Equal(t, status.InvalidKey, err)

	err = Process(program, []*Account{voter, e.poll, e.tallyA, payout}, encode(&SubmitVote{}))
	assert.Equal(t, status.NotEnoughAccounts, err)

	assert.Equal(t, uint64(10), voter.Lamports)
	assert.Equal(t, uint64(1), e.poll.Lamports)
}

func TestSubmitVoteTallyFull(t *testing.T) {
	e := setup(t, 10, 0)
	e.tallyA.Data = e.tallyA.Data[:record.MinTallySize]

	assert.NoError(t, e.vote(e.tallyA, account(20, true, 10, 0), account(30, false, 0, 0), 0))

	voter := account(21, true, 10, 0)
	before := snapshot(voter, e.poll, e.tallyA)
	err := e.vote(e.tallyA, voter, account(31, false, 0, 0), 0)
	assert.Equal(t, status.MaxTallyCapacity, err)
	assert.Equal(t, before, snapshot(voter, e.poll, e.tallyA))
}

func TestSubmitClaim(t *testing.T) {
	e := setup(t, 10, 0)

	payoutA := account(30, false, 0, 0)
	payoutB := account(31, false, 0, 0)
	assert.NoError(t, e.vote(e.tallyA, account(20, true, 10, 0), payoutA, 0))
	assert.NoError(t, e.vote(e.tallyB, account(21, true, 5, 0), payoutB, 0))

	// not finished

	err := e.claim(e.tallyA, 9, payoutA)
	assert.Equal(t, status.PollNotFinished, err)
	assert.Equal(t, uint64(16), e.poll.Lamports)

	// losers

	err = e.claim(e.tallyB, 10, payoutB)
	assert.Equal(t, status.CannotPayoutToLosers, err)

	// invalid list

	err = e.claim(e.tallyA, 10)
	assert.Equal(t, status.InvalidPayoutList, err)

	err = e.claim(e.tallyA, 10, payoutB)
	assert.Equal(t, status.InvalidPayoutOrder, err)
	assert.Equal(t, uint64(16), e.poll.Lamports)

	// claim

	err = e.claim(e.tallyA, 10, payoutA)
	assert.NoError(t, err)
	assert.Equal(t, uint64(15), payoutA.Lamports)
	assert.Equal(t, uint64(1), e.poll.Lamports)

	// claimed

	err = e.claim(e.tallyA, 10, payoutA)
	assert.Equal(t, status.PollHasNoFunds, err)
	assert.Equal(t, uint64(15), payoutA.Lamports)
}

func TestSubmitClaimChecks(t *testing.T) {
	e := setup(t, 10, 0)

	err := Process(program, []*Account{e.poll, e.tallyA}, encode(&SubmitClaim{}))
	assert.Equal(t, status.NotEnoughAccounts, err)

	err = e.claim(e.tallyA, 20)
	assert.Equal(t, status.PollHasNoFunds, err)

	err = e.claim(e.collection, 20)
	assert.Equal(t, status.InvalidDataType, err)

	e.poll.Lamports = 10
	err = Process(program, []*Account{e.poll, e.tallyA, account(9, false, 0, 8)}, encode(&SubmitClaim{}))
	assert.Equal(t, status.InvalidKey, err)

	e.poll.Owner = addr(9)
	err = e.claim(e.tallyA, 20)
	assert.Equal(t, status.InvalidAccount, err)
}

func TestEndToEnd(t *testing.T) {
	e := setup(t, 10, 0)

	payouts := []*Account{
		account(30, false, 0, 0),
		account(31, false, 0, 0),
		account(32, false, 0, 0),
	}
	loser := account(33, false, 0, 0)

	assert.NoError(t, e.vote(e.tallyA, account(20, true, 10, 0), payouts[0], 1))
	assert.NoError(t, e.vote(e.tallyB, account(23, true, 5, 0), loser, 2))
	assert.NoError(t, e.vote(e.tallyA, account(21, true, 20, 0), payouts[1], 3))
	assert.NoError(t, e.vote(e.tallyA, account(22, true, 30, 0), payouts[2], 10))

	err := e.vote(e.tallyA, account(24, true, 30, 0), payouts[2], 11)
	assert.Equal(t, status.PollAlreadyFinished, err)

	poll := e.decodePoll(t)
	assert.Equal(t, uint64(60), poll.Options[record.SideA].Quantity)
	assert.Equal(t, uint64(5), poll.Options[record.SideB].Quantity)
	assert.Equal(t, uint64(66), e.poll.Lamports)

	err = e.claim(e.tallyB, 12, loser)
	assert.Equal(t, status.CannotPayoutToLosers, err)

	err = e.claim(e.tallyA, 12, payouts...)
	assert.NoError(t, err)
	assert.Equal(t, uint64(10), payouts[0].Lamports)
	assert.Equal(t, uint64(21), payouts[1].Lamports)
	assert.Equal(t, uint64(34), payouts[2].Lamports)
	assert.Equal(t, uint64(0), loser.Lamports)
	assert.Equal(t, uint64(1), e.poll.Lamports)

	err = e.claim(e.tallyA, 13, payouts...)
	assert.Equal(t, status.PollHasNoFunds, err)
}
