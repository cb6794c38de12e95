package wager

import (
	"os"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

var defaultWriteOptions = pebble.Sync

// DB is a generic database.
type DB = pebble.DB

// OpenDB will open or create the specified db.
func OpenDB(directory string) (*DB, error) {
	// check directory
	if directory == "" {
		panic("wager: missing directory")
	}

	// ensure directory
	err := os.MkdirAll(directory, 0777)
	if err != nil {
		return nil, errors.Wrap(err, "create directory")
	}

	// open db
	db, err := pebble.Open(directory, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open db")
	}

	return db, nil
}

func get(db *DB, key []byte) ([]byte, bool, error) {
	// get value
	value, closer, err := db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	// copy value
	value = append([]byte{}, value...)

	// release value
	err = closer.Close()
	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}
