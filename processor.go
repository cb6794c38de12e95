package wager

import (
	"sync"

	"cosmossdk.io/math"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/tomb.v2"

	"github.com/256dpi/wager/pis"
	"github.com/256dpi/wager/record"
	"github.com/256dpi/wager/status"
)

// Transaction is a single instruction call.
type Transaction struct {
	// The ordered account addresses passed to the program.
	Accounts []record.Address

	// The addresses that signed the transaction.
	Signers []record.Address

	// The instruction data including the command byte.
	Data []byte
}

type tuple struct {
	tx  Transaction
	ack func(Receipt, error)
}

// ProcessorConfig is used to configure a processor.
type ProcessorConfig struct {
	// The amount of transactions that may be queued.
	QueueSize int

	// The logger used to log executed transactions.
	Logger zerolog.Logger

	// The optional metrics.
	Metrics *Metrics
}

// Processor executes transactions one at a time against a bank and records a
// receipt for each executed transaction in a journal. The accounts referenced
// by queued transactions should not be modified through the bank directly
// while the processor is running.
type Processor struct {
	program *pis.Program
	bank    *Bank
	journal *Journal
	config  ProcessorConfig
	pipe    chan tuple
	mutex   sync.RWMutex
	once    sync.Once
	tomb    tomb.Tomb
}

// NewProcessor will create and return a processor.
func NewProcessor(program *pis.Program, bank *Bank, journal *Journal, config ProcessorConfig) *Processor {
	// check program
	if program == nil {
		panic("wager: missing program")
	}

	// set default
	if config.QueueSize <= 0 {
		config.QueueSize = 1
	}

	// prepare processor
	p := &Processor{
		program: program,
		bank:    bank,
		journal: journal,
		config:  config,
		pipe:    make(chan tuple, config.QueueSize),
	}

	// run worker
	p.tomb.Go(p.worker)

	return p
}

// Submit will asynchronously execute the specified transaction and call the
// provided callback with the receipt. The receipt is only valid if the
// transaction has been journaled. False is returned if the processor has
// been closed.
func (p *Processor) Submit(tx Transaction, ack func(Receipt, error)) bool {
	// check if closed
	select {
	case <-p.tomb.Dying():
		return false
	default:
	}

	// create tuple
	tpl := tuple{
		tx:  tx,
		ack: ack,
	}

	// acquire mutex
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	// the pipe is closed only after the tomb is dying
	select {
	case <-p.tomb.Dying():
		return false
	default:
	}

	// queue transaction
	select {
	case p.pipe <- tpl:
		return true
	case <-p.tomb.Dying():
		return false
	}
}

// Execute will execute the specified transaction and wait for its receipt.
// Errors of the program can be inspected using errors.Cause.
func (p *Processor) Execute(tx Transaction) (Receipt, error) {
	// prepare result
	type result struct {
		receipt Receipt
		err     error
	}
	done := make(chan result, 1)

	// submit transaction
	ok := p.Submit(tx, func(receipt Receipt, err error) {
		done <- result{receipt: receipt, err: err}
	})
	if !ok {
		return Receipt{}, ErrClosed
	}

	// await result
	res := <-done

	return res.receipt, res.err
}

// Close will close the processor. Queued transactions are executed before
// the worker exits.
func (p *Processor) Close() {
	// kill tomb
	p.tomb.Kill(nil)

	// close pipe
	p.once.Do(func() {
		p.mutex.Lock()
		close(p.pipe)
		p.mutex.Unlock()
	})

	// wait for exit
	_ = p.tomb.Wait()
}

func (p *Processor) worker() error {
	for {
		// await next tuple
		tpl, ok := <-p.pipe
		if !ok {
			return tomb.ErrDying
		}

		// execute transaction
		receipt, err := p.execute(tpl.tx)

		// call ack
		if tpl.ack != nil {
			tpl.ack(receipt, err)
		}
	}
}

func (p *Processor) execute(tx Transaction) (Receipt, error) {
	// prepare receipt
	receipt := Receipt{
		Accounts: tx.Accounts,
	}

	// get command
	name := "Unknown"
	if cmd, _, err := record.SplitCommand(tx.Data); err == nil {
		receipt.Command = cmd
		name = cmd.String()
	}

	// get slot
	slot, err := p.bank.Slot()
	if err != nil {
		return receipt, err
	}
	receipt.Slot = slot

	// run transaction
	payout, err := p.run(tx, receipt.Command)

	// set result
	result := "ok"
	if code, ok := errors.Cause(err).(status.Code); ok {
		receipt.Status = code
		result = code.Name()
	} else if err != nil {
		receipt.Error = err.Error()
		result = "error"
	}

	// write receipt
	seq, jErr := p.journal.Write(receipt)
	if jErr != nil {
		return receipt, errors.Wrap(jErr, "write receipt")
	}
	receipt.Sequence = seq

	// update metrics
	if p.config.Metrics != nil {
		p.config.Metrics.Transactions.WithLabelValues(name, result).Inc()
		if payout > 0 {
			p.config.Metrics.Payouts.Add(float64(payout))
		}
	}

	// log receipt
	level := zerolog.DebugLevel
	if receipt.Failed() {
		level = zerolog.InfoLevel
	}
	p.config.Logger.WithLevel(level).
		Uint64("seq", seq).
		Uint64("slot", slot).
		Str("command", name).
		Str("result", result).
		Msg("executed")

	return receipt, err
}

func (p *Processor) run(tx Transaction, cmd record.Command) (uint64, error) {
	// load accounts, repeated addresses share the same account and the
	// synthesized clock is never stored
	loaded := map[record.Address]*pis.Account{}
	unique := make([]*pis.Account, 0, len(tx.Accounts))
	accounts := make([]*pis.Account, 0, len(tx.Accounts))
	for _, address := range tx.Accounts {
		account, ok := loaded[address]
		if !ok {
			var err error
			account, err = p.bank.Lookup(address)
			if err != nil {
				return 0, err
			}
			loaded[address] = account
			if address != record.ClockAddress {
				unique = append(unique, account)
			}
		}
		accounts = append(accounts, account)
	}

	// mark signers
	for _, address := range tx.Signers {
		if account, ok := loaded[address]; ok {
			account.Signer = true
		}
	}

	// remember first balance
	var first uint64
	if len(accounts) > 0 {
		first = accounts[0].Lamports
	}

	// sum lamports
	before := total(unique)

	// process instruction
	err := p.program.Process(accounts, tx.Data)
	if err != nil {
		return 0, errors.Wrap(err, "process")
	}

	// check conservation of the stored lamports
	if !total(unique).Equal(before) {
		return 0, ErrConservation
	}

	// commit accounts
	err = p.bank.Commit(unique...)
	if err != nil {
		return 0, err
	}

	// compute payout of claims
	var payout uint64
	if cmd == record.SubmitClaimCommand && accounts[0].Lamports < first {
		payout = first - accounts[0].Lamports
	}

	return payout, nil
}

func total(accounts []*pis.Account) math.Uint {
	sum := math.ZeroUint()
	for _, account := range accounts {
		sum = sum.Add(math.NewUint(account.Lamports))
	}

	return sum
}
