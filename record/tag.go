package record

import "github.com/256dpi/wager/status"

// Tag identifies the record stored in an account buffer.
type Tag uint8

// The available tags.
const (
	Unset Tag = iota
	CollectionTag
	PollTag
	TallyTag
	Invalid Tag = 0xff
)

// String returns the name of the tag.
func (t Tag) String() string {
	switch t {
	case Unset:
		return "Unset"
	case CollectionTag:
		return "Collection"
	case PollTag:
		return "Poll"
	case TallyTag:
		return "Tally"
	default:
		return "Invalid"
	}
}

// ReadTag will read the tag of the specified buffer. Unknown values are
// reported as Invalid.
func ReadTag(buf []byte) (Tag, error) {
	// check length
	if len(buf) == 0 {
		return Invalid, status.AccountDataTooSmall
	}

	// map value
	switch tag := Tag(buf[0]); tag {
	case Unset, CollectionTag, PollTag, TallyTag:
		return tag, nil
	default:
		return Invalid, nil
	}
}

// Expect will verify that the buffer carries the expected tag.
func Expect(buf []byte, tag Tag) error {
	// read tag
	actual, err := ReadTag(buf)
	if err != nil {
		return err
	}

	// compare
	if actual != tag || actual == Invalid {
		return status.InvalidDataType
	}

	return nil
}

// ExpectNew will verify that the buffer has not been initialized.
func ExpectNew(buf []byte) error {
	// check tag
	err := Expect(buf, Unset)
	if err == status.InvalidDataType {
		return status.AccountNotNew
	}

	return err
}
