package wager

import (
	"github.com/256dpi/wager/pis"
	"github.com/256dpi/wager/record"
)

// InitCollectionTx returns a transaction that initializes a collection.
func InitCollectionTx(collection record.Address) Transaction {
	return Transaction{
		Accounts: []record.Address{collection},
		Signers:  []record.Address{collection},
		Data:     mustEncode(&pis.InitCollection{}),
	}
}

// InitPollTx returns a transaction that creates a poll and its tallies and
// registers the poll in the collection.
func InitPollTx(creator, poll, collection, tallyA, tallyB record.Address, params record.PollParams) Transaction {
	return Transaction{
		Accounts: []record.Address{creator, poll, collection, tallyA, tallyB, record.ClockAddress},
		Signers:  []record.Address{creator, poll, tallyA, tallyB},
		Data:     mustEncode(&pis.InitPoll{PollParams: params}),
	}
}

// SubmitVoteTx returns a transaction that wagers the balance of the voter on
// the option of the tally on behalf of the payout account.
func SubmitVoteTx(voter, poll, tally, payout record.Address) Transaction {
	return Transaction{
		Accounts: []record.Address{voter, poll, tally, payout, record.ClockAddress},
		Signers:  []record.Address{voter},
		Data:     mustEncode(&pis.SubmitVote{}),
	}
}

// SubmitClaimTx returns a transaction that pays out the poll to the listed
// payout accounts of the winning tally.
func SubmitClaimTx(poll, tally record.Address, payouts ...record.Address) Transaction {
	return Transaction{
		Accounts: append([]record.Address{poll, tally, record.ClockAddress}, payouts...),
		Data:     mustEncode(&pis.SubmitClaim{}),
	}
}

func mustEncode(ins pis.Instruction) []byte {
	data, err := ins.Encode()
	if err != nil {
		panic(err)
	}

	return data
}
