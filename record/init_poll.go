package record

import "github.com/256dpi/wager/status"

// PollParams is the payload of the InitPoll instruction.
type PollParams struct {
	// The number of slots the poll accepts wagers for.
	Timeout uint32

	// The poll question.
	Header []byte

	// The option texts.
	OptionA []byte
	OptionB []byte
}

// Size returns the encoded length of the payload.
func (p *PollParams) Size() int {
	return 4 + 4 + len(p.Header) + 4 + len(p.OptionA) + 4 + len(p.OptionB)
}

// Encode will encode the payload.
func (p *PollParams) Encode() []byte {
	// prepare buffer
	buf := make([]byte, p.Size())

	// write fields
	c := &cursor{buf: buf}
	c.putUint32(p.Timeout)
	c.putBytes(p.Header)
	c.putBytes(p.OptionA)
	c.putBytes(p.OptionB)

	return buf
}

// Decode will decode the payload. Trailing bytes are ignored.
func (p *PollParams) Decode(buf []byte) error {
	// read fields
	c := &cursor{buf: buf}
	p.Timeout = c.uint32()
	p.Header = c.bytes()
	p.OptionA = c.bytes()
	p.OptionB = c.bytes()

	// check overrun
	if c.short {
		return status.InvalidInput
	}

	return nil
}
