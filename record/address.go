package record

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// AddressLength is the encoded length of an address.
const AddressLength = 32

// Address identifies an account.
type Address [AddressLength]byte

// ClockAddress is the well-known address of the clock account.
var ClockAddress = MustParseAddress("SysvarC1ock11111111111111111111111111111111")

// ParseAddress will parse a base58 encoded address.
func ParseAddress(str string) (Address, error) {
	// decode string
	buf, err := base58.Decode(str)
	if err != nil {
		return Address{}, err
	}

	// check length
	if len(buf) != AddressLength {
		return Address{}, fmt.Errorf("invalid address length %d", len(buf))
	}

	// copy address
	var addr Address
	copy(addr[:], buf)

	return addr, nil
}

// MustParseAddress will parse a base58 encoded address and panic on errors.
func MustParseAddress(str string) Address {
	addr, err := ParseAddress(str)
	if err != nil {
		panic(err)
	}

	return addr
}

// String returns the base58 form of the address.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// IsZero returns whether the address is all zeroes.
func (a Address) IsZero() bool {
	return a == Address{}
}

func readAddress(buf []byte) Address {
	var addr Address
	copy(addr[:], buf[:AddressLength])
	return addr
}
