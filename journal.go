package wager

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/256dpi/fpack"
	"github.com/pkg/errors"

	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// Receipt is the outcome of a single executed transaction.
type Receipt struct {
	// The sequence assigned by the journal.
	Sequence uint64

	// The slot at which the transaction was executed.
	Slot uint64

	// The instruction command byte, if present.
	Command record.Command

	// The status code of a failed instruction, zero otherwise.
	Status status.Code

	// The error message of a failed transaction.
	Error string

	// The ordered account addresses.
	Accounts []record.Address
}

// Failed returns whether the transaction failed.
func (r *Receipt) Failed() bool {
	return r.Status != 0 || r.Error != ""
}

// JournalConfig is used to configure a journal.
type JournalConfig struct {
	// The prefix for all journal keys.
	Prefix string
}

// Journal manages the storage of sequential receipts.
type Journal struct {
	db     *DB
	config JournalConfig
	prefix []byte

	receivers sync.Map

	head  uint64
	mutex sync.Mutex
}

// CreateJournal will create a journal that stores receipts in the provided db.
func CreateJournal(db *DB, config JournalConfig) (*Journal, error) {
	// check prefix
	if config.Prefix == "" {
		config.Prefix = "journal"
	}

	// create journal
	j := &Journal{
		db:     db,
		config: config,
		prefix: []byte(config.Prefix),
	}

	// get head
	value, ok, err := get(db, j.headKey())
	if err != nil {
		return nil, errors.Wrap(err, "get head")
	} else if ok {
		j.head = binary.BigEndian.Uint64(value)
	}

	return j, nil
}

// Write will append the receipt to the journal and return its sequence.
func (j *Journal) Write(receipt Receipt) (uint64, error) {
	// acquire mutex
	j.mutex.Lock()

	// assign sequence
	receipt.Sequence = j.head + 1

	// encode receipt
	value, err := encodeReceipt(&receipt)
	if err != nil {
		j.mutex.Unlock()
		return 0, errors.Wrap(err, "encode receipt")
	}

	// prepare batch
	batch := j.db.NewBatch()
	defer batch.Close()

	// add receipt and head
	err = batch.Set(j.entryKey(receipt.Sequence), value, nil)
	if err == nil {
		err = batch.Set(j.headKey(), encodeSequence(receipt.Sequence), nil)
	}
	if err == nil {
		err = batch.Commit(defaultWriteOptions)
	}
	if err != nil {
		j.mutex.Unlock()
		return 0, errors.Wrap(err, "write receipt")
	}

	// set head
	j.head = receipt.Sequence

	// release mutex
	j.mutex.Unlock()

	// send notifications to all receivers and skip full receivers
	j.receivers.Range(func(_, value interface{}) bool {
		select {
		case value.(chan<- uint64) <- receipt.Sequence:
		default:
		}

		return true
	})

	return receipt.Sequence, nil
}

// Read will read receipts from and including the specified sequence up to the
// requested amount of receipts. A non-positive amount yields no receipts.
func (j *Journal) Read(sequence uint64, amount int) ([]Receipt, error) {
	// get head
	head := j.Head()

	// sequences start at one
	if sequence == 0 {
		sequence = 1
	}

	// check range
	if amount <= 0 || sequence > head {
		return []Receipt{}, nil
	}

	// limit capacity to the available receipts
	capacity := amount
	if available := head - sequence + 1; available < uint64(capacity) {
		capacity = int(available)
	}

	// prepare list
	list := make([]Receipt, 0, capacity)

	// read receipts
	for seq := sequence; seq <= head && len(list) < amount; seq++ {
		// get value
		value, ok, err := get(j.db, j.entryKey(seq))
		if err != nil {
			return nil, errors.Wrap(err, "get receipt")
		} else if !ok {
			continue
		}

		// decode receipt
		receipt, err := decodeReceipt(value)
		if err != nil {
			return nil, errors.Wrapf(err, "decode receipt %d", seq)
		}

		// add receipt
		list = append(list, *receipt)
	}

	return list, nil
}

// Length will return the number of stored receipts.
func (j *Journal) Length() int {
	return int(j.Head())
}

// Head will return the last written sequence.
func (j *Journal) Head() uint64 {
	// get head
	j.mutex.Lock()
	head := j.head
	j.mutex.Unlock()

	return head
}

// Subscribe will subscribe the specified channel to new sequences written to
// the journal. Notifications will be skipped if the specified channel is not
// writable for some reason.
func (j *Journal) Subscribe(receiver chan<- uint64) {
	j.receivers.Store(receiver, receiver)
}

// Unsubscribe will remove a previously subscribed receiver.
func (j *Journal) Unsubscribe(receiver chan<- uint64) {
	j.receivers.Delete(receiver)
}

func (j *Journal) headKey() []byte {
	key := make([]byte, 0, len(j.prefix)+5)
	return append(append(key, j.prefix...), "!head"...)
}

func (j *Journal) entryKey(seq uint64) []byte {
	key := make([]byte, 0, len(j.prefix)+1+8)
	return append(append(append(key, j.prefix...), '#'), encodeSequence(seq)...)
}

func encodeSequence(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}

func encodeReceipt(receipt *Receipt) ([]byte, error) {
	value, _, err := fpack.Encode(false, func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode fields
		enc.Uint64(receipt.Sequence)
		enc.Uint64(receipt.Slot)
		enc.Uint8(uint8(receipt.Command))
		enc.Uint64(uint64(receipt.Status))
		enc.String(receipt.Error, 2)

		// encode accounts
		enc.Uint16(uint16(len(receipt.Accounts)))
		for _, address := range receipt.Accounts {
			enc.Bytes(address[:], 1)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func decodeReceipt(value []byte) (*Receipt, error) {
	// prepare receipt
	receipt := &Receipt{}

	// decode fields
	err := fpack.Decode(value, func(dec *fpack.Decoder) error {
		// decode version
		if dec.Uint8() != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode fields
		receipt.Sequence = dec.Uint64()
		receipt.Slot = dec.Uint64()
		receipt.Command = record.Command(dec.Uint8())
		receipt.Status = status.Code(dec.Uint64())
		receipt.Error = dec.String(2, true)

		// decode accounts
		length := int(dec.Uint16())
		receipt.Accounts = make([]record.Address, length)
		for i := 0; i < length; i++ {
			copy(receipt.Accounts[i][:], dec.Bytes(1, false))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}
