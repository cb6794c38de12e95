// Package status defines the error codes returned by the poll program.
package status

import "fmt"

// Code is a program error. Codes carry no context beyond their kind and are
// compared with ==.
type Code uint32

// The available codes. The numeric values are part of the program interface
// and must not be reordered.
const (
	// access control
	MissingSigner Code = iota + 1
	InvalidAccount
	InvalidKey

	// data integrity
	InvalidDataType
	AccountNotNew
	AccountDataTooSmall

	// capacity
	MaxPollCapacity
	MaxTallyCapacity

	// business rules
	PollAlreadyCreated
	PollAlreadyFinished
	PollNotFinished
	PollHasNoFunds
	WagerHasNoFunds
	PollCannotBeEven
	InvalidTallyKey
	CannotPayoutToLosers
	InvalidPayoutList
	InvalidPayoutOrder

	// protocol
	InvalidCommand
	InvalidInput
	NotEnoughAccounts
)

var names = map[Code]string{
	MissingSigner:        "MissingSigner",
	InvalidAccount:       "InvalidAccount",
	InvalidKey:           "InvalidKey",
	InvalidDataType:      "InvalidDataType",
	AccountNotNew:        "AccountNotNew",
	AccountDataTooSmall:  "AccountDataTooSmall",
	MaxPollCapacity:      "MaxPollCapacity",
	MaxTallyCapacity:     "MaxTallyCapacity",
	PollAlreadyCreated:   "PollAlreadyCreated",
	PollAlreadyFinished:  "PollAlreadyFinished",
	PollNotFinished:      "PollNotFinished",
	PollHasNoFunds:       "PollHasNoFunds",
	WagerHasNoFunds:      "WagerHasNoFunds",
	PollCannotBeEven:     "PollCannotBeEven",
	InvalidTallyKey:      "InvalidTallyKey",
	CannotPayoutToLosers: "CannotPayoutToLosers",
	InvalidPayoutList:    "InvalidPayoutList",
	InvalidPayoutOrder:   "InvalidPayoutOrder",
	InvalidCommand:       "InvalidCommand",
	InvalidInput:         "InvalidInput",
	NotEnoughAccounts:    "NotEnoughAccounts",
}

var messages = map[Code]string{
	MissingSigner:        "a required account did not sign the transaction",
	InvalidAccount:       "account is not owned by the program",
	InvalidKey:           "account does not have the expected address",
	InvalidDataType:      "account data has an unexpected type",
	AccountNotNew:        "account data is already initialized",
	AccountDataTooSmall:  "account data is too small",
	MaxPollCapacity:      "collection cannot hold more polls",
	MaxTallyCapacity:     "tally cannot hold more wagers",
	PollAlreadyCreated:   "poll is already part of the collection",
	PollAlreadyFinished:  "poll has already finished",
	PollNotFinished:      "poll has not finished yet",
	PollHasNoFunds:       "poll has no funds to pay out",
	WagerHasNoFunds:      "wager account has no funds",
	PollCannotBeEven:     "wager would make the poll even",
	InvalidTallyKey:      "tally does not belong to the poll",
	CannotPayoutToLosers: "tally did not win the poll",
	InvalidPayoutList:    "payout accounts do not match the tally",
	InvalidPayoutOrder:   "payout accounts are not in tally order",
	InvalidCommand:       "unknown command",
	InvalidInput:         "invalid instruction input",
	NotEnoughAccounts:    "not enough accounts provided",
}

// Name returns the name of the code.
func (c Code) Name() string {
	name, ok := names[c]
	if !ok {
		return fmt.Sprintf("Code(%d)", uint32(c))
	}

	return name
}

// Error implements the error interface.
func (c Code) Error() string {
	msg, ok := messages[c]
	if !ok {
		return fmt.Sprintf("unknown error %d", uint32(c))
	}

	return msg
}

// String returns the name of the code.
func (c Code) String() string {
	return c.Name()
}
