package record

import "github.com/256dpi/wager/status"

// Command is the leading byte of an instruction.
type Command uint8

// The available commands.
const (
	InitCollectionCommand Command = iota
	InitPollCommand
	SubmitVoteCommand
	SubmitClaimCommand
)

// String returns the name of the command.
func (c Command) String() string {
	switch c {
	case InitCollectionCommand:
		return "InitCollection"
	case InitPollCommand:
		return "InitPoll"
	case SubmitVoteCommand:
		return "SubmitVote"
	case SubmitClaimCommand:
		return "SubmitClaim"
	default:
		return "Unknown"
	}
}

// SplitCommand will split the instruction data in its command and payload.
func SplitCommand(data []byte) (Command, []byte, error) {
	// check length
	if len(data) == 0 {
		return 0, nil, status.InvalidCommand
	}

	// check command
	cmd := Command(data[0])
	if cmd > SubmitClaimCommand {
		return 0, nil, status.InvalidCommand
	}

	return cmd, data[1:], nil
}
