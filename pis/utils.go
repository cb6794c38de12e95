package pis

import (
	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// check returns the first error of the already evaluated checks.
func check(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func expectSigned(account *Account) error {
	if !account.Signer {
		return status.MissingSigner
	}

	return nil
}

func expectOwnedBy(account *Account, program record.Address) error {
	if account.Owner != program {
		return status.InvalidAccount
	}

	return nil
}

func expectTag(account *Account, tag record.Tag) error {
	return record.Expect(account.Data, tag)
}

func expectNew(account *Account) error {
	return record.ExpectNew(account.Data)
}

func expectKey(account *Account, key record.Address) error {
	if account.Address != key {
		return status.InvalidKey
	}

	return nil
}

func expectMinSize(account *Account, size int) error {
	if len(account.Data) < size {
		return status.AccountDataTooSmall
	}

	return nil
}

func expectDistinct(accounts ...*Account) error {
	for i := range accounts {
		for j := i + 1; j < len(accounts); j++ {
			if accounts[i].Address == accounts[j].Address {
				return status.InvalidAccount
			}
		}
	}

	return nil
}

func expectPresent(data []byte) error {
	if len(data) == 0 {
		return status.InvalidInput
	}

	return nil
}
