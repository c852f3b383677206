package app

import (
	"context"
	"sync"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/x"
)

// Decoder turns a raw instruction into a Tx.
type Decoder interface {
	Decode(raw []byte) (xswap.Tx, error)
}

// Processor executes raw instructions against a CommitKVStore. Every
// instruction runs on its own cache wrap: a delivered instruction is
// written atomically on success and dropped on failure, a checked one is
// always dropped. Instructions are processed one at a time.
type Processor struct {
	mu sync.Mutex

	db      xswap.CommitKVStore
	decoder Decoder
	handler xswap.Handler
	cfg     processorConfig
}

type processorConfig struct {
	clock  clock.Clock
	logger log.Logger
	debug  bool
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*processorConfig)

// WithClock sets the clock that stamps every instruction. The default is
// the wall clock.
func WithClock(c clock.Clock) ProcessorOption {
	return func(cfg *processorConfig) {
		cfg.clock = c
	}
}

// WithLogger sets the logger passed down to the handlers.
func WithLogger(l log.Logger) ProcessorOption {
	return func(cfg *processorConfig) {
		cfg.logger = l
	}
}

// WithDebug makes the results carry full error details.
func WithDebug(debug bool) ProcessorOption {
	return func(cfg *processorConfig) {
		cfg.debug = debug
	}
}

// NewProcessor returns a processor dispatching decoded instructions to the
// handler, usually a decorated Router.
func NewProcessor(db xswap.CommitKVStore, decoder Decoder, h xswap.Handler, opts ...ProcessorOption) *Processor {
	cfg := processorConfig{
		clock:  clock.NewDefaultClock(),
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Processor{
		db:      db,
		decoder: decoder,
		handler: h,
		cfg:     cfg,
	}
}

// InitChain initializes the state from the genesis and commits it.
func (p *Processor) InitChain(gen Genesis, init xswap.Initializer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	cache := p.db.CacheWrap()
	if err := InitChain(cache, gen, init); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	p.cfg.logger.Info("chain initialized", "chain_id", gen.ChainID)
	return nil
}

// Check runs the validation of a raw instruction without modifying the
// state. Signers are the holders that authorized the instruction.
func (p *Processor) Check(ctx context.Context, raw []byte, signers ...xswap.Holder) Result {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, err := p.decoder.Decode(raw)
	if err != nil {
		return errorResult(err, p.cfg.debug)
	}
	cache := p.db.CacheWrap()
	defer cache.Discard()

	res, err := p.handler.Check(p.context(ctx, signers), cache, tx)
	return CheckResult(res, err, p.cfg.debug)
}

// Deliver executes a raw instruction and commits its changes if it
// succeeds.
func (p *Processor) Deliver(ctx context.Context, raw []byte, signers ...xswap.Holder) Result {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, err := p.decoder.Decode(raw)
	if err != nil {
		return errorResult(err, p.cfg.debug)
	}
	cache := p.db.CacheWrap()
	res, err := p.handler.Deliver(p.context(ctx, signers), cache, tx)
	if err != nil {
		cache.Discard()
		return DeliverResult(nil, err, p.cfg.debug)
	}
	if err := cache.Write(); err != nil {
		return errorResult(errors.Wrap(errors.ErrDatabase, err.Error()), p.cfg.debug)
	}
	return DeliverResult(res, nil, p.cfg.debug)
}

// Query gives read access to the committed state.
func (p *Processor) Query(fn func(db xswap.ReadOnlyKVStore) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.db)
}

// Now returns the time the next instruction would be stamped with.
func (p *Processor) Now() uint64 {
	t := p.cfg.clock.Now().Unix()
	if t < 0 {
		return 0
	}
	return uint64(t)
}

func (p *Processor) context(ctx context.Context, signers []xswap.Holder) context.Context {
	ctx = xswap.WithBlockTime(ctx, p.cfg.clock.Now())
	ctx = xswap.WithLogger(ctx, p.cfg.logger)
	return x.WithSigners(ctx, signers...)
}
