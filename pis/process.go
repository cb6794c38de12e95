package pis

import "github.com/256dpi/wager/record"

// Decode will decode the instruction data.
func Decode(data []byte) (Instruction, error) {
	// split command
	cmd, payload, err := record.SplitCommand(data)
	if err != nil {
		return nil, err
	}

	// create instruction
	ins, err := New(cmd)
	if err != nil {
		return nil, err
	}

	// decode payload
	err = ins.Decode(payload)
	if err != nil {
		return nil, err
	}

	return ins, nil
}

// Process will decode and execute the instruction data using the provided
// accounts. The accounts are only modified if no error is returned.
func Process(program record.Address, accounts []*Account, data []byte) error {
	// decode instruction
	ins, err := Decode(data)
	if err != nil {
		return err
	}

	// execute instruction
	return ins.Execute(&Context{
		Program:  program,
		Accounts: accounts,
	})
}
