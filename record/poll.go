package record

import "github.com/256dpi/wager/status"

// Side selects one of the two poll options.
type Side int

// The available sides.
const (
	SideA Side = iota
	SideB
)

// Other returns the opposite side.
func (s Side) Other() Side {
	return 1 - s
}

// String returns the name of the side.
func (s Side) String() string {
	if s == SideA {
		return "A"
	}

	return "B"
}

// Option is one of the two outcomes of a poll.
type Option struct {
	// The option description.
	Text []byte

	// The tally account collecting wagers for this option.
	Tally Address

	// The total amount wagered on this option.
	Quantity uint64
}

// Poll is a decoded poll record. Header and option texts are copies, the
// option quantities may be updated in place using SetQuantity.
type Poll struct {
	// The account that created the poll.
	Creator Address

	// The last slot at which wagers are accepted.
	Deadline uint64

	// The poll question.
	Header []byte

	// The two options.
	Options [2]Option

	buf        []byte
	quantities [2]int
}

// PollSize returns the encoded length of a poll record with the specified
// header and option text lengths.
func PollSize(header, optionA, optionB int) int {
	const option = 4 + AddressLength + 8
	return 1 + AddressLength + 8 + 4 + header + option + optionA + option + optionB
}

// Size returns the encoded length of the poll.
func (p *Poll) Size() int {
	return PollSize(len(p.Header), len(p.Options[SideA].Text), len(p.Options[SideB].Text))
}

// EncodePoll will write the poll to the buffer and bind the poll to it.
func EncodePoll(buf []byte, p *Poll) error {
	// check length
	if len(buf) < p.Size() {
		return status.AccountDataTooSmall
	}

	// write fields
	c := &cursor{buf: buf}
	c.take(1)[0] = byte(PollTag)
	c.putAddress(p.Creator)
	c.putUint64(p.Deadline)
	c.putBytes(p.Header)
	for i := range p.Options {
		c.putBytes(p.Options[i].Text)
		c.putAddress(p.Options[i].Tally)
		p.quantities[i] = c.pos
		c.putUint64(p.Options[i].Quantity)
	}

	// bind buffer
	p.buf = buf

	return nil
}

// DecodePoll will decode the poll stored in the buffer.
func DecodePoll(buf []byte) (*Poll, error) {
	// check tag
	err := Expect(buf, PollTag)
	if err != nil {
		return nil, err
	}

	// prepare poll
	p := &Poll{buf: buf}

	// read fields
	c := &cursor{buf: buf, pos: 1}
	p.Creator = c.address()
	p.Deadline = c.uint64()
	p.Header = c.bytes()
	for i := range p.Options {
		p.Options[i].Text = c.bytes()
		p.Options[i].Tally = c.address()
		p.quantities[i] = c.pos
		p.Options[i].Quantity = c.uint64()
	}

	// check overrun
	if c.short {
		return nil, status.InvalidDataType
	}

	return p, nil
}

// Select returns the side whose tally matches the address.
func (p *Poll) Select(tally Address) (Side, bool) {
	switch tally {
	case p.Options[SideA].Tally:
		return SideA, true
	case p.Options[SideB].Tally:
		return SideB, true
	default:
		return 0, false
	}
}

// SetQuantity will update the quantity of the specified option and write it
// through to the bound buffer.
func (p *Poll) SetQuantity(side Side, quantity uint64) {
	// check binding
	if p.buf == nil {
		panic("record: poll not bound to a buffer")
	}

	// update field and buffer
	p.Options[side].Quantity = quantity
	order.PutUint64(p.buf[p.quantities[side]:], quantity)
}
