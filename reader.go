package wager

import "sync"

// ReaderConfig is used to configure a reader.
type ReaderConfig struct {
	// The first sequence to read.
	Start uint64

	// The channel on which receipts are sent.
	Receipts chan<- Receipt

	// The channel on which errors are sent.
	Errors chan<- error

	// The amount of receipts to fetch from the journal at once.
	Batch int
}

// Reader follows a journal and forwards its receipts.
type Reader struct {
	journal *Journal
	config  ReaderConfig

	once   sync.Once
	closed chan struct{}
}

// NewReader will create and return a new reader.
func NewReader(journal *Journal, config ReaderConfig) *Reader {
	// check channel
	if config.Receipts == nil {
		panic("wager: missing receipts channel")
	}

	// set defaults
	if config.Start == 0 {
		config.Start = 1
	}
	if config.Batch <= 0 {
		config.Batch = 1
	}

	// prepare reader
	r := &Reader{
		journal: journal,
		config:  config,
		closed:  make(chan struct{}),
	}

	// subscribe to notifications
	notifications := make(chan uint64, 1)
	journal.Subscribe(notifications)

	// run worker
	go r.worker(notifications)

	return r
}

// Close will close the reader.
func (r *Reader) Close() {
	r.once.Do(func() {
		close(r.closed)
	})
}

func (r *Reader) worker(notifications chan uint64) {
	// ensure unsubscribe
	defer r.journal.Unsubscribe(notifications)

	// set initial position
	position := r.config.Start

	for {
		// check if closed
		select {
		case <-r.closed:
			return
		default:
		}

		// wait for notification if no new receipts are available
		if r.journal.Head() < position {
			select {
			case <-notifications:
			case <-r.closed:
				return
			}

			continue
		}

		// read receipts
		receipts, err := r.journal.Read(position, r.config.Batch)
		if err != nil {
			select {
			case r.config.Errors <- err:
			default:
			}

			return
		}

		// forward receipts
		for _, receipt := range receipts {
			select {
			case r.config.Receipts <- receipt:
				position = receipt.Sequence + 1
			case <-r.closed:
				return
			}
		}
	}
}
