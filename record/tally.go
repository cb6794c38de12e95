package record

import "github.com/256dpi/wager/status"

// EntryLength is the encoded length of a tally entry.
const EntryLength = AddressLength + 8

// MinTallySize is the smallest buffer that can hold a tally with room for a
// single entry.
const MinTallySize = headerLength + EntryLength

// Entry is a single wager stored in a tally.
type Entry struct {
	Voter Address
	Wager uint64
}

// Tally is a view of a tally record. Mutations are written through to the
// underlying buffer.
type Tally struct {
	buf []byte
}

// InitTally will tag the zeroed buffer as a tally.
func InitTally(buf []byte) error {
	// check length
	if len(buf) < headerLength {
		return status.AccountDataTooSmall
	}

	// set tag
	buf[0] = byte(TallyTag)

	return nil
}

// DecodeTally will return a view of the tally stored in the buffer.
func DecodeTally(buf []byte) (*Tally, error) {
	// check tag
	err := Expect(buf, TallyTag)
	if err != nil {
		return nil, err
	}

	// check length
	if len(buf) < headerLength {
		return nil, status.AccountDataTooSmall
	}

	// prepare view
	t := &Tally{buf: buf}

	// check count
	if t.Count() > t.Capacity() {
		return nil, status.InvalidDataType
	}

	return t, nil
}

// Count returns the number of stored entries.
func (t *Tally) Count() int {
	return int(order.Uint32(t.buf[1:5]))
}

// Capacity returns the number of entries the buffer can hold.
func (t *Tally) Capacity() int {
	return (len(t.buf) - headerLength) / EntryLength
}

// Entry returns the entry at the specified index.
func (t *Tally) Entry(i int) Entry {
	// check index
	if i < 0 || i >= t.Count() {
		panic("record: tally index out of range")
	}

	// read entry
	off := t.offset(i)
	return Entry{
		Voter: readAddress(t.buf[off:]),
		Wager: order.Uint64(t.buf[off+AddressLength:]),
	}
}

// Find returns the index of the voter's entry or -1 if absent.
func (t *Tally) Find(voter Address) int {
	for i := 0; i < t.Count(); i++ {
		if readAddress(t.buf[t.offset(i):]) == voter {
			return i
		}
	}

	return -1
}

// SetWager will overwrite the wager of the entry at the specified index.
func (t *Tally) SetWager(i int, wager uint64) {
	// check index
	if i < 0 || i >= t.Count() {
		panic("record: tally index out of range")
	}

	order.PutUint64(t.buf[t.offset(i)+AddressLength:], wager)
}

// Append will add an entry to the end of the tally.
func (t *Tally) Append(entry Entry) error {
	// check capacity
	count := t.Count()
	if count >= t.Capacity() {
		return status.MaxTallyCapacity
	}

	// write entry and count
	off := t.offset(count)
	copy(t.buf[off:], entry.Voter[:])
	order.PutUint64(t.buf[off+AddressLength:], entry.Wager)
	order.PutUint32(t.buf[1:5], uint32(count+1))

	return nil
}

// Entries returns a copy of all stored entries.
func (t *Tally) Entries() []Entry {
	list := make([]Entry, 0, t.Count())
	for i := 0; i < t.Count(); i++ {
		list = append(list, t.Entry(i))
	}

	return list
}

func (t *Tally) offset(i int) int {
	return headerLength + i*EntryLength
}
