package wager

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/256dpi/wager/pis"
	"github.com/256dpi/wager/record"
)

var program = addr(0xee)

func addr(b byte) record.Address {
	var a record.Address
	for i := range a {
		a[i] = b
	}

	return a
}

func openDB(t *testing.T) *DB {
	db, err := OpenDB(t.TempDir())
	assert.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	return db
}

type host struct {
	bank      *Bank
	journal   *Journal
	metrics   *Metrics
	processor *Processor
}

func newHost(t *testing.T) *host {
	db := openDB(t)

	bank, err := CreateBank(db, BankConfig{})
	assert.NoError(t, err)

	journal, err := CreateJournal(db, JournalConfig{})
	assert.NoError(t, err)

	metrics := NewMetrics(prometheus.NewRegistry())

	processor := NewProcessor(pis.NewProgram(program, zerolog.Nop()), bank, journal, ProcessorConfig{
		QueueSize: 4,
		Metrics:   metrics,
	})

	t.Cleanup(processor.Close)

	return &host{
		bank:      bank,
		journal:   journal,
		metrics:   metrics,
		processor: processor,
	}
}

func (h *host) create(t *testing.T, b byte, owner record.Address, lamports uint64, size int) record.Address {
	address := addr(b)
	err := h.bank.Create(address, owner, lamports, size)
	assert.NoError(t, err)
	return address
}

func (h *host) lamports(t *testing.T, address record.Address) uint64 {
	account, err := h.bank.Lookup(address)
	assert.NoError(t, err)
	return account.Lamports
}

type market struct {
	creator    record.Address
	collection record.Address
	poll       record.Address
	tallyA     record.Address
	tallyB     record.Address
}

func (h *host) market(t *testing.T, timeout uint32) *market {
	m := &market{
		creator:    h.create(t, 1, record.Address{}, 100, 0),
		collection: h.create(t, 2, program, 0, record.MinCollectionSize+3*record.AddressLength),
		poll:       h.create(t, 3, program, 1, 512),
		tallyA:     h.create(t, 4, program, 0, record.MinTallySize+9*record.EntryLength),
		tallyB:     h.create(t, 5, program, 0, record.MinTallySize+9*record.EntryLength),
	}

	_, err := h.processor.Execute(InitCollectionTx(m.collection))
	assert.NoError(t, err)

	_, err = h.processor.Execute(InitPollTx(m.creator, m.poll, m.collection, m.tallyA, m.tallyB, record.PollParams{
		Timeout: timeout,
		Header:  []byte("H"),
		OptionA: []byte("A"),
		OptionB: []byte("B"),
	}))
	assert.NoError(t, err)

	return m
}
