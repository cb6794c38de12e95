// Package wager implements an in-process host for the poll program. It keeps
// accounts in a pebble database, executes transactions one at a time and
// records a receipt for every executed transaction.
package wager

import "github.com/pkg/errors"

// ErrUnknownAccount is returned if a transaction references a missing account.
var ErrUnknownAccount = errors.New("unknown account")

// ErrAccountExists is returned when creating an account that already exists.
var ErrAccountExists = errors.New("account exists")

// ErrConservation is returned if an instruction changed the lamport total.
var ErrConservation = errors.New("lamport total changed")

// ErrClosed is returned if the processor has been closed.
var ErrClosed = errors.New("processor closed")
