// Package record implements the binary layout of the poll program accounts.
package record

import "encoding/binary"

/*
Record Layout

Every account buffer starts with a tag byte that identifies the record stored
in the remainder of the buffer. A zeroed buffer carries the Unset tag and is
considered new.

Collection: tag:u8 count:u32 polls:[address; capacity]
Poll:       tag:u8 creator:address deadline:u64 header_len:u32 header
            option_a{text_len:u32 text tally:address quantity:u64}
            option_b{text_len:u32 text tally:address quantity:u64}
Tally:      tag:u8 count:u32 entries:[(address, u64); capacity]
Clock:      slot:u64

All integers are little-endian. The capacity of collections and tallies is
derived from the buffer length.
*/

var order = binary.LittleEndian

// headerLength is the length of the tag and count of list records.
const headerLength = 1 + 4

// cursor performs sequential bounds-checked access to a buffer. Once an
// access would run past the end, all further accesses fail.
type cursor struct {
	buf   []byte
	pos   int
	short bool
}

func (c *cursor) take(n int) []byte {
	// check space
	if c.short || n < 0 || len(c.buf)-c.pos < n {
		c.short = true
		return nil
	}

	// slice buffer
	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b
}

func (c *cursor) uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}

	return order.Uint32(b)
}

func (c *cursor) uint64() uint64 {
	b := c.take(8)
	if b == nil {
		return 0
	}

	return order.Uint64(b)
}

func (c *cursor) address() Address {
	b := c.take(AddressLength)
	if b == nil {
		return Address{}
	}

	return readAddress(b)
}

// bytes reads a length prefixed byte string and returns a copy.
func (c *cursor) bytes() []byte {
	// read length
	n := c.uint32()
	if c.short || uint64(n) > uint64(len(c.buf)-c.pos) {
		c.short = true
		return nil
	}

	// copy data
	b := c.take(int(n))
	return append([]byte{}, b...)
}

func (c *cursor) putUint32(v uint32) {
	if b := c.take(4); b != nil {
		order.PutUint32(b, v)
	}
}

func (c *cursor) putUint64(v uint64) {
	if b := c.take(8); b != nil {
		order.PutUint64(b, v)
	}
}

func (c *cursor) putAddress(a Address) {
	if b := c.take(AddressLength); b != nil {
		copy(b, a[:])
	}
}

func (c *cursor) putBytes(v []byte) {
	c.putUint32(uint32(len(v)))
	if b := c.take(len(v)); b != nil {
		copy(b, v)
	}
}
