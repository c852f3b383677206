package app

import (
	"context"
	"testing"
	"time"

	"github.com/lightningnetwork/lnd/clock"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/weavetest"
	"github.com/iov-one/xswap/weavetest/assert"
	"github.com/iov-one/xswap/x"
	"github.com/iov-one/xswap/x/utils"
)

// stampHandler writes the time and the main signer of the instruction.
type stampHandler struct {
	err error
}

func (h stampHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if err := h.write(ctx, db); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{Log: "checked"}, h.err
}

func (h stampHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	if err := h.write(ctx, db); err != nil {
		return nil, err
	}
	return &xswap.DeliverResult{Data: []byte("done")}, h.err
}

func (stampHandler) write(ctx context.Context, db xswap.KVStore) error {
	signer, err := x.RequireSigner(ctx, x.HostAuth{})
	if err != nil {
		return err
	}
	now, _ := xswap.BlockTime(ctx)
	return db.Set([]byte("stamp"), append(signer.Bytes(), byte(now.Unix()%256)))
}

func TestProcessor(t *testing.T) {
	db, cleanup := weavetest.CommitKVStore(t)
	defer cleanup()

	r := NewRouter()
	r.Handle(xswap.OpDeposit, msgDecoder(xswap.OpDeposit), stampHandler{})
	r.Handle(xswap.OpWithdraw, msgDecoder(xswap.OpWithdraw), stampHandler{err: errors.ErrPoolBalanceNotEnough})

	clk := clock.NewTestClock(time.Unix(1_700_000_100, 0))
	p := NewProcessor(db, r, r, WithClock(clk))
	assert.Equal(t, uint64(1_700_000_100), p.Now())

	signer := weavetest.NewHolder()
	ctx := context.Background()
	stamp := func() []byte {
		var v []byte
		err := p.Query(func(db xswap.ReadOnlyKVStore) error {
			var err error
			v, err = db.Get([]byte("stamp"))
			return err
		})
		assert.Nil(t, err)
		return v
	}

	res := p.Check(ctx, []byte{byte(xswap.OpDeposit)}, signer)
	assert.Equal(t, true, res.IsOK())
	assert.Equal(t, "checked", res.Log)
	assert.Nil(t, stamp())

	res = p.Deliver(ctx, []byte{byte(xswap.OpDeposit)})
	assert.Equal(t, errors.ErrUnauthorized.Code(), res.Code)
	assert.Equal(t, "authorization", res.Kind)
	assert.Nil(t, stamp())

	res = p.Deliver(ctx, []byte{byte(xswap.OpWithdraw)}, signer)
	assert.Equal(t, errors.ErrPoolBalanceNotEnough.Code(), res.Code)
	assert.Equal(t, "balance", res.Kind)
	assert.Nil(t, stamp())

	res = p.Deliver(ctx, []byte{byte(xswap.OpDeposit)}, signer)
	assert.Equal(t, true, res.IsOK())
	assert.Equal(t, []byte("done"), res.Data)
	assert.Equal(t, append(signer.Bytes(), byte(1_700_000_100%256)), stamp())

	clk.SetTime(time.Unix(1_700_000_101, 0))
	res = p.Deliver(ctx, []byte{byte(xswap.OpDeposit)}, signer)
	assert.Equal(t, true, res.IsOK())
	assert.Equal(t, append(signer.Bytes(), byte(1_700_000_101%256)), stamp())

	res = p.Deliver(ctx, []byte{byte(xswap.OpLock)}, signer)
	assert.Equal(t, errors.ErrInvalidInstruction.Code(), res.Code)
	assert.Equal(t, "decoding", res.Kind)
}

func TestProcessorHidesInternalErrors(t *testing.T) {
	db, cleanup := weavetest.CommitKVStore(t)
	defer cleanup()

	r := NewRouter()
	r.Handle(xswap.OpDeposit, msgDecoder(xswap.OpDeposit), weavetest.PanicHandler{Value: "secret detail"})
	stack := ChainDecorators(utils.NewRecovery()).WithHandler(r)

	p := NewProcessor(db, r, stack)
	res := p.Deliver(context.Background(), []byte{byte(xswap.OpDeposit)})
	assert.Equal(t, errors.ErrPanic.Code(), res.Code)
	assert.Equal(t, "panic", res.Log)

	p = NewProcessor(db, r, stack, WithDebug(true))
	res = p.Deliver(context.Background(), []byte{byte(xswap.OpDeposit)})
	assert.Equal(t, errors.ErrPanic.Code(), res.Code)
	assert.Equal(t, true, len(res.Log) > len("panic"))
}

func TestProcessorInitChain(t *testing.T) {
	db, cleanup := weavetest.CommitKVStore(t)
	defer cleanup()

	p := NewProcessor(db, NewRouter(), NewRouter())
	gen, err := LoadGenesis("testdata/genesis.json")
	assert.Nil(t, err)
	assert.Nil(t, p.InitChain(gen, dummyInit{}))

	err = p.Query(func(db xswap.ReadOnlyKVStore) error {
		chainID, err := ChainID(db)
		assert.Equal(t, "test-chain-67", chainID)
		return err
	})
	assert.Nil(t, err)

	err = p.InitChain(gen, dummyInit{})
	assert.IsErr(t, errors.ErrDuplicate, err)
}
