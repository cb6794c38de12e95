package pis

import (
	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// AddPoll will register the poll in the collection. The collection is left
// unchanged if an error is returned.
func AddPoll(collection *record.Collection, poll record.Address) error {
	// check capacity
	if collection.Count() >= collection.Capacity() {
		return status.MaxPollCapacity
	}

	// check existence
	if collection.Contains(poll) {
		return status.PollAlreadyCreated
	}

	return collection.Append(poll)
}
