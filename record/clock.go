package record

import "github.com/256dpi/wager/status"

// ClockSize is the encoded length of a clock.
const ClockSize = 8

// Clock is the host supplied clock record.
type Clock struct {
	Slot uint64
}

// DecodeClock will decode the clock stored in the buffer.
func DecodeClock(buf []byte) (Clock, error) {
	// check length
	if len(buf) < ClockSize {
		return Clock{}, status.AccountDataTooSmall
	}

	return Clock{Slot: order.Uint64(buf)}, nil
}

// EncodeClock will write the clock to the buffer.
func EncodeClock(buf []byte, clock Clock) error {
	// check length
	if len(buf) < ClockSize {
		return status.AccountDataTooSmall
	}

	// write slot
	order.PutUint64(buf, clock.Slot)

	return nil
}
