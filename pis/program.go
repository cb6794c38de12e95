package pis

import (
	"github.com/rs/zerolog"

	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// Program binds the instruction set to a program address and logs the result
// of every processed instruction.
type Program struct {
	id     record.Address
	logger zerolog.Logger
}

// NewProgram will create and return a new program.
func NewProgram(id record.Address, logger zerolog.Logger) *Program {
	return &Program{
		id:     id,
		logger: logger.With().Str("program", id.String()).Logger(),
	}
}

// ID returns the program address.
func (p *Program) ID() record.Address {
	return p.id
}

// Process will process the instruction data using the provided accounts.
func (p *Program) Process(accounts []*Account, data []byte) error {
	// run instruction
	err := Process(p.id, accounts, data)

	// get command name
	name := "Unknown"
	if cmd, _, cmdErr := record.SplitCommand(data); cmdErr == nil {
		name = cmd.String()
	}

	// log result
	if err != nil {
		event := p.logger.Info().Str("command", name)
		if code, ok := err.(status.Code); ok {
			event = event.Str("error", code.Name()).Uint32("code", uint32(code))
		}
		event.Msg(err.Error())
		return err
	}
	p.logger.Debug().Str("command", name).Msg("ok")

	return nil
}
