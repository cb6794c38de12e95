package pis

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

func newPoll(t *testing.T) *record.Poll {
	poll := &record.Poll{
		Creator:  addr(1),
		Deadline: 10,
		Header:   []byte("H"),
		Options: [2]record.Option{
			{Text: []byte("A"), Tally: addr(4)},
			{Text: []byte("B"), Tally: addr(5)},
		},
	}

	err := record.EncodePoll(make([]byte, poll.Size()), poll)
	assert.NoError(t, err)

	return poll
}

func TestRecordPollWager(t *testing.T) {
	poll := newPoll(t)

	err := RecordPollWager(poll, addr(4), 10)
	assert.NoError(t, err)
	assert.Equal(t, uint64(10), poll.Options[record.SideA].Quantity)

	err = RecordPollWager(poll, addr(6), 10)
	assert.Equal(t, status.InvalidTallyKey, err)

	err = RecordPollWager(poll, addr(5), 10)
	assert.Equal(t, status.PollCannotBeEven, err)
	assert.Equal(t, uint64(0), poll.Options[record.SideB].Quantity)

	err = RecordPollWager(poll, addr(5), 11)
	assert.NoError(t, err)
	assert.Equal(t, uint64(11), poll.Options[record.SideB].Quantity)

	err = RecordPollWager(poll, addr(4), 1)
	assert.Equal(t, status.PollCannotBeEven, err)

	err = RecordPollWager(poll, addr(4), math.MaxUint64)
	assert.Equal(t, status.InvalidInput, err)
	assert.Equal(t, uint64(10), poll.Options[record.SideA].Quantity)
}

func TestRecordPollWagerNeverEven(t *testing.T) {
	poll := newPoll(t)
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		tally := addr(4 + byte(rnd.Intn(2)))
		err := RecordPollWager(poll, tally, uint64(rnd.Intn(20)+1))
		if err != nil {
			assert.Equal(t, status.PollCannotBeEven, err)
		}

		assert.NotEqual(t, poll.Options[record.SideA].Quantity, poll.Options[record.SideB].Quantity)
	}
}

func TestCheckWinningTally(t *testing.T) {
	poll := newPoll(t)

	_, err := CheckWinningTally(poll, addr(4))
	assert.Equal(t, status.CannotPayoutToLosers, err)

	assert.NoError(t, RecordPollWager(poll, addr(4), 60))
	assert.NoError(t, RecordPollWager(poll, addr(5), 5))

	quantity, err := CheckWinningTally(poll, addr(4))
	assert.NoError(t, err)
	assert.Equal(t, uint64(60), quantity)

	_, err = CheckWinningTally(poll, addr(5))
	assert.Equal(t, status.CannotPayoutToLosers, err)

	_, err = CheckWinningTally(poll, addr(6))
	assert.Equal(t, status.InvalidTallyKey, err)
}
