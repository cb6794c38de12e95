package pis

import "github.com/256dpi/wager/record"

// InitCollection is used to initialize a new collection.
//
// Accounts: [collection]
type InitCollection struct{}

var initCollectionDesc = &Description{
	Name:    "wager/InitCollection",
	Command: record.InitCollectionCommand,
}

func (i *InitCollection) Describe() *Description {
	return initCollectionDesc
}

func (i *InitCollection) Execute(ctx *Context) error {
	// get accounts
	accounts, err := ctx.Take(1)
	if err != nil {
		return err
	}

	// check collection
	collection := accounts[0]
	err = check(
		expectSigned(collection),
		expectOwnedBy(collection, ctx.Program),
		expectMinSize(collection, record.MinCollectionSize),
		expectNew(collection),
	)
	if err != nil {
		return err
	}

	// set tag
	return record.InitCollection(collection.Data)
}

func (i *InitCollection) Encode() ([]byte, error) {
	return []byte{byte(record.InitCollectionCommand)}, nil
}

func (i *InitCollection) Decode([]byte) error {
	return nil
}
