package pis

import (
	"cosmossdk.io/math"

	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// CheckTallyWager will verify that a wager of the voter can be recorded.
func CheckTallyWager(tally *record.Tally, voter record.Address) error {
	// repeated wagers accumulate
	if tally.Find(voter) >= 0 {
		return nil
	}

	// check capacity
	if tally.Count() >= tally.Capacity() {
		return status.MaxTallyCapacity
	}

	return nil
}

// RecordTallyWager will add the wager to the voter's entry or append a new
// entry if the voter has not yet wagered.
func RecordTallyWager(tally *record.Tally, voter record.Address, wager uint64) error {
	// accumulate existing entry
	if i := tally.Find(voter); i >= 0 {
		tally.SetWager(i, tally.Entry(i).Wager+wager)
		return nil
	}

	// append entry
	return tally.Append(record.Entry{
		Voter: voter,
		Wager: wager,
	})
}

// PayoutShares will compute the share of the pot for every tally entry. The
// accounts must be listed in tally order. Every entry receives its share
// rounded down except the last, which receives the remainder so that the
// shares sum up to the pot.
func PayoutShares(tally *record.Tally, pot, winning uint64, accounts []*Account) ([]uint64, error) {
	// check length
	count := tally.Count()
	if count == 0 || len(accounts) != count {
		return nil, status.InvalidPayoutList
	}

	// prepare shares
	shares := make([]uint64, count)
	var disbursed uint64

	// compute shares
	for i := 0; i < count; i++ {
		// check order
		entry := tally.Entry(i)
		if accounts[i] == nil || accounts[i].Address != entry.Voter {
			return nil, status.InvalidPayoutOrder
		}

		// check wager
		if entry.Wager > winning {
			return nil, status.InvalidDataType
		}

		// the last entry receives the rounding remainder
		if i == count-1 {
			shares[i] = pot - disbursed
			break
		}

		// compute share
		share := math.NewUint(pot).Mul(math.NewUint(entry.Wager)).Quo(math.NewUint(winning)).Uint64()
		disbursed += share
		shares[i] = share

		// check total
		if disbursed > pot {
			return nil, status.InvalidDataType
		}
	}

	return shares, nil
}

// Payout will distribute the pot among the accounts of the tally entries.
func Payout(tally *record.Tally, pot, winning uint64, accounts []*Account) error {
	// compute shares
	shares, err := PayoutShares(tally, pot, winning, accounts)
	if err != nil {
		return err
	}

	// credit accounts
	credit(accounts, shares)

	return nil
}

func credit(accounts []*Account, shares []uint64) {
	for i, share := range shares {
		accounts[i].Lamports += share
	}
}
