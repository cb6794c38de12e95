package record

import "github.com/256dpi/wager/status"

// MinCollectionSize is the smallest buffer that can hold a collection with
// room for a single poll.
const MinCollectionSize = headerLength + AddressLength

// Collection is a view of a collection record. Mutations are written through
// to the underlying buffer.
type Collection struct {
	buf []byte
}

// InitCollection will tag the zeroed buffer as a collection.
func InitCollection(buf []byte) error {
	// check length
	if len(buf) < headerLength {
		return status.AccountDataTooSmall
	}

	// set tag
	buf[0] = byte(CollectionTag)

	return nil
}

// DecodeCollection will return a view of the collection stored in the buffer.
func DecodeCollection(buf []byte) (*Collection, error) {
	// check tag
	err := Expect(buf, CollectionTag)
	if err != nil {
		return nil, err
	}

	// check length
	if len(buf) < headerLength {
		return nil, status.AccountDataTooSmall
	}

	// prepare view
	c := &Collection{buf: buf}

	// check count
	if c.Count() > c.Capacity() {
		return nil, status.InvalidDataType
	}

	return c, nil
}

// Count returns the number of stored polls.
func (c *Collection) Count() int {
	return int(order.Uint32(c.buf[1:5]))
}

// Capacity returns the number of polls the buffer can hold.
func (c *Collection) Capacity() int {
	return (len(c.buf) - headerLength) / AddressLength
}

// Poll returns the poll address at the specified index.
func (c *Collection) Poll(i int) Address {
	// check index
	if i < 0 || i >= c.Count() {
		panic("record: collection index out of range")
	}

	return readAddress(c.buf[c.offset(i):])
}

// Contains returns whether the poll address is stored in the collection.
func (c *Collection) Contains(poll Address) bool {
	for i := 0; i < c.Count(); i++ {
		if c.Poll(i) == poll {
			return true
		}
	}

	return false
}

// Append will add the poll address to the end of the collection.
func (c *Collection) Append(poll Address) error {
	// check capacity
	count := c.Count()
	if count >= c.Capacity() {
		return status.MaxPollCapacity
	}

	// write address and count
	copy(c.buf[c.offset(count):], poll[:])
	order.PutUint32(c.buf[1:5], uint32(count+1))

	return nil
}

// Polls returns a copy of all stored poll addresses.
func (c *Collection) Polls() []Address {
	list := make([]Address, 0, c.Count())
	for i := 0; i < c.Count(); i++ {
		list = append(list, c.Poll(i))
	}

	return list
}

func (c *Collection) offset(i int) int {
	return headerLength + i*AddressLength
}
