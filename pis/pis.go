// Package pis implements the instruction set of the poll program.
package pis

import (
	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

/*
Program Architecture

A collection is created once and registers every poll created for it. A poll
is created together with two tallies, one per option. Until the poll deadline
voters move the full balance of a wager account into the poll and are
recorded in the tally of their option. After the deadline anyone may submit
a claim for the winning tally, which distributes the poll balance minus one
lamport among the recorded voters proportionally to their wagers. The
remaining lamport marks the poll as claimed.

Instructions never mutate accounts before all checks have passed. The host
discards all changes of a failed call.
*/

// Description describes an instruction.
type Description struct {
	// The unique name.
	Name string

	// The command byte.
	Command record.Command
}

// Instruction is a single program instruction.
type Instruction interface {
	// Describe returns the description of the instruction.
	Describe() *Description

	// Execute will validate the accounts and apply the instruction.
	Execute(ctx *Context) error

	// Encode will encode the instruction including the command byte.
	Encode() ([]byte, error)

	// Decode will decode the instruction payload following the command byte.
	Decode(payload []byte) error
}

// Account is a host supplied account.
type Account struct {
	// The account address.
	Address record.Address

	// Whether the account signed the transaction.
	Signer bool

	// The program owning the account.
	Owner record.Address

	// The account balance.
	Lamports uint64

	// The account data.
	Data []byte
}

// Context is the environment of a single call.
type Context struct {
	// The address of the executing program.
	Program record.Address

	// The ordered accounts.
	Accounts []*Account
}

// Account returns the account at the specified position.
func (c *Context) Account(i int) (*Account, error) {
	// check index
	if i >= len(c.Accounts) || c.Accounts[i] == nil {
		return nil, status.NotEnoughAccounts
	}

	return c.Accounts[i], nil
}

// Take returns the first n accounts.
func (c *Context) Take(n int) ([]*Account, error) {
	// check length
	if len(c.Accounts) < n {
		return nil, status.NotEnoughAccounts
	}

	// check accounts
	for _, account := range c.Accounts[:n] {
		if account == nil {
			return nil, status.NotEnoughAccounts
		}
	}

	return c.Accounts[:n], nil
}

// New returns an empty instruction for the specified command.
func New(cmd record.Command) (Instruction, error) {
	switch cmd {
	case record.InitCollectionCommand:
		return &InitCollection{}, nil
	case record.InitPollCommand:
		return &InitPoll{}, nil
	case record.SubmitVoteCommand:
		return &SubmitVote{}, nil
	case record.SubmitClaimCommand:
		return &SubmitClaim{}, nil
	default:
		return nil, status.InvalidCommand
	}
}
