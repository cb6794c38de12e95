package wager

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/256dpi/fpack"
	"github.com/pkg/errors"

	"github.com/256dpi/wager/pis"
	"github.com/256dpi/wager/record"
)

// BankConfig is used to configure a bank.
type BankConfig struct {
	// The prefix for all bank keys.
	Prefix string
}

// Bank manages the storage of accounts and the slot clock.
type Bank struct {
	db     *DB
	config BankConfig
	prefix []byte
	mutex  sync.Mutex
}

// CreateBank will create a bank that stores accounts in the provided db.
func CreateBank(db *DB, config BankConfig) (*Bank, error) {
	// check prefix
	if config.Prefix == "" {
		config.Prefix = "bank"
	}

	// create bank
	b := &Bank{
		db:     db,
		config: config,
		prefix: []byte(config.Prefix),
	}

	return b, nil
}

// Create will create a new zeroed account of the specified size.
func (b *Bank) Create(address, owner record.Address, lamports uint64, size int) error {
	// acquire mutex
	b.mutex.Lock()
	defer b.mutex.Unlock()

	// check existence
	_, ok, err := get(b.db, b.accountKey(address))
	if err != nil {
		return errors.Wrap(err, "get account")
	} else if ok {
		return errors.Wrapf(ErrAccountExists, "create %s", address)
	}

	// store account
	return b.store(&pis.Account{
		Address:  address,
		Owner:    owner,
		Lamports: lamports,
		Data:     make([]byte, size),
	})
}

// Get will load the specified account. The returned account is a copy and
// never marked as a signer.
func (b *Bank) Get(address record.Address) (*pis.Account, bool, error) {
	// handle clock
	if address == record.ClockAddress {
		clock, err := b.Clock()
		if err != nil {
			return nil, false, err
		}

		return clock, true, nil
	}

	// get value
	value, ok, err := get(b.db, b.accountKey(address))
	if err != nil {
		return nil, false, errors.Wrap(err, "get account")
	} else if !ok {
		return nil, false, nil
	}

	// decode account
	account, err := decodeAccount(address, value)
	if err != nil {
		return nil, false, errors.Wrapf(err, "decode %s", address)
	}

	return account, true, nil
}

// Lookup is like Get but returns ErrUnknownAccount for missing accounts.
func (b *Bank) Lookup(address record.Address) (*pis.Account, error) {
	// get account
	account, ok, err := b.Get(address)
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, errors.Wrapf(ErrUnknownAccount, "lookup %s", address)
	}

	return account, nil
}

// Fund will add lamports to the specified account.
func (b *Bank) Fund(address record.Address, lamports uint64) error {
	// acquire mutex
	b.mutex.Lock()
	defer b.mutex.Unlock()

	// get account
	account, err := b.Lookup(address)
	if err != nil {
		return err
	}

	// add lamports
	account.Lamports += lamports

	return b.store(account)
}

// Slot will return the current slot.
func (b *Bank) Slot() (uint64, error) {
	// get value
	value, ok, err := get(b.db, b.slotKey())
	if err != nil {
		return 0, errors.Wrap(err, "get slot")
	} else if !ok {
		return 0, nil
	}

	return binary.BigEndian.Uint64(value), nil
}

// Advance will move the clock forward by the specified number of slots and
// return the new slot.
func (b *Bank) Advance(n uint64) (uint64, error) {
	// acquire mutex
	b.mutex.Lock()
	defer b.mutex.Unlock()

	// get slot
	slot, err := b.Slot()
	if err != nil {
		return 0, err
	}

	// increment slot
	slot += n

	// encode slot
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, slot)

	// set slot
	err = b.db.Set(b.slotKey(), value, defaultWriteOptions)
	if err != nil {
		return 0, errors.Wrap(err, "set slot")
	}

	return slot, nil
}

// Clock returns the clock account for the current slot.
func (b *Bank) Clock() (*pis.Account, error) {
	// get slot
	slot, err := b.Slot()
	if err != nil {
		return nil, err
	}

	// encode clock
	data := make([]byte, record.ClockSize)
	err = record.EncodeClock(data, record.Clock{Slot: slot})
	if err != nil {
		return nil, err
	}

	return &pis.Account{
		Address: record.ClockAddress,
		Data:    data,
	}, nil
}

// Commit will store all provided accounts atomically. The clock account is
// skipped.
func (b *Bank) Commit(accounts ...*pis.Account) error {
	// acquire mutex
	b.mutex.Lock()
	defer b.mutex.Unlock()

	// prepare batch
	batch := b.db.NewBatch()
	defer batch.Close()

	// add accounts
	for _, account := range accounts {
		// skip clock
		if account.Address == record.ClockAddress {
			continue
		}

		// encode account
		value, err := encodeAccount(account)
		if err != nil {
			return errors.Wrapf(err, "encode %s", account.Address)
		}

		// set account
		err = batch.Set(b.accountKey(account.Address), value, nil)
		if err != nil {
			return errors.Wrap(err, "set account")
		}
	}

	// commit batch
	err := batch.Commit(defaultWriteOptions)
	if err != nil {
		return errors.Wrap(err, "commit accounts")
	}

	return nil
}

func (b *Bank) store(account *pis.Account) error {
	// encode account
	value, err := encodeAccount(account)
	if err != nil {
		return errors.Wrapf(err, "encode %s", account.Address)
	}

	// set account
	err = b.db.Set(b.accountKey(account.Address), value, defaultWriteOptions)
	if err != nil {
		return errors.Wrap(err, "set account")
	}

	return nil
}

func (b *Bank) accountKey(address record.Address) []byte {
	key := make([]byte, 0, len(b.prefix)+1+record.AddressLength)
	return append(append(append(key, b.prefix...), '#'), address[:]...)
}

func (b *Bank) slotKey() []byte {
	key := make([]byte, 0, len(b.prefix)+5)
	return append(append(key, b.prefix...), "!slot"...)
}

func encodeAccount(account *pis.Account) ([]byte, error) {
	value, _, err := fpack.Encode(false, func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode fields
		enc.Bytes(account.Owner[:], 1)
		enc.Uint64(account.Lamports)
		enc.Bytes(account.Data, 4)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func decodeAccount(address record.Address, value []byte) (*pis.Account, error) {
	// prepare account
	account := &pis.Account{
		Address: address,
	}

	// decode fields
	var owner []byte
	err := fpack.Decode(value, func(dec *fpack.Decoder) error {
		// decode version
		if dec.Uint8() != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode fields
		owner = dec.Bytes(1, false)
		account.Lamports = dec.Uint64()
		account.Data = dec.Bytes(4, true)

		return nil
	})
	if err != nil {
		return nil, err
	}

	// check owner
	if len(owner) != record.AddressLength {
		return nil, fmt.Errorf("invalid owner length %d", len(owner))
	}
	copy(account.Owner[:], owner)

	return account, nil
}
