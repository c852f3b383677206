package locked

import (
	"context"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/crypto"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/swap"
	"github.com/iov-one/xswap/x"
	"github.com/iov-one/xswap/x/cash"
	"github.com/iov-one/xswap/x/pool"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r xswap.Registry, auth x.Authenticator, reg Registry, dir pool.Directory, ledger pool.Ledger, coins pool.CoinResolver, bank cash.Ledger) {
	r.Handle(xswap.OpLock, func() xswap.Msg { return &LockMsg{} }, LockHandler{auth: auth, reg: reg, dir: dir, ledger: ledger, coins: coins})
	r.Handle(xswap.OpUnlock, func() xswap.Msg { return &UnlockMsg{} }, UnlockHandler{reg: reg, ledger: ledger})
	r.Handle(xswap.OpRelease, func() xswap.Msg { return &ReleaseMsg{} }, ReleaseHandler{auth: auth, reg: reg, dir: dir, ledger: ledger, coins: coins, bank: bank})
}

// netAmount is the amount of a swap without the liquidity provider fee.
func netAmount(e swap.Encoded) (uint64, error) {
	if e.FeeForLP() > e.Amount() {
		return 0, errors.Wrapf(errors.ErrInvalidAmount, "fee %d over amount %d", e.FeeForLP(), e.Amount())
	}
	return e.Amount() - e.FeeForLP(), nil
}

// LockHandler takes the net amount of a swap from the pool of the signer.
type LockHandler struct {
	auth   x.Authenticator
	reg    Registry
	dir    pool.Directory
	ledger pool.Ledger
	coins  pool.CoinResolver
}

var _ xswap.Handler = LockHandler{}

func (h LockHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	op, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	have, err := h.ledger.Balance(db, op.pool, op.msg.Encoded.OutCoinIndex())
	if err != nil {
		return nil, err
	}
	if have < op.amount {
		return nil, errors.Wrapf(errors.ErrPoolBalanceNotEnough, "pool %d holds %d", op.pool, have)
	}
	return &xswap.CheckResult{}, nil
}

func (h LockHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	op, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	msg := op.msg
	id := msg.ID()
	l := &Lock{Pool: op.pool, Until: op.until, Recipient: msg.Recipient}
	if err := h.reg.Create(db, id, l); err != nil {
		return nil, err
	}
	if err := h.ledger.Debit(db, op.pool, msg.Encoded.OutCoinIndex(), op.amount); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Debug("swap locked", "swap", msg.Encoded, "id", id, "pool", op.pool, "until", op.until)
	return &xswap.DeliverResult{Data: id[:]}, nil
}

type lockOp struct {
	msg    *LockMsg
	pool   uint64
	amount uint64
	until  uint64
}

func (h LockHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*lockOp, error) {
	var msg LockMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer, err := x.RequireSigner(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	conf, err := swap.CurrentConfiguration(db)
	if err != nil {
		return nil, err
	}
	e := msg.Encoded
	if e.OutChain() != conf.ChainCode {
		return nil, errors.Wrapf(errors.ErrOutChainMismatch, "out chain %s", e.OutChain())
	}
	if _, err := h.coins.TokenOf(db, e.OutCoinIndex()); err != nil {
		return nil, err
	}
	amount, err := netAmount(e)
	if err != nil {
		return nil, err
	}
	if err := conf.CheckAmount(amount); err != nil {
		return nil, err
	}
	pool, err := h.dir.PoolIndexOf(db, signer)
	if err != nil {
		return nil, err
	}
	if pool == 0 {
		return nil, errors.Wrap(errors.ErrPoolIndexCannotBeZero, "premium manager cannot lock")
	}
	until := xswap.UnixNow(ctx) + conf.LockTimePeriod
	if until+conf.LockSafetyMargin > e.ExpireTs() {
		return nil, errors.Wrapf(errors.ErrSwapExpireTsIsSoon, "locked until %d, expires at %d", until, e.ExpireTs())
	}
	if err := conf.Scheme().CheckRequestSignature(e, msg.Signature[:], msg.Initiator); err != nil {
		return nil, err
	}
	return &lockOp{msg: &msg, pool: pool, amount: amount, until: until}, nil
}

// UnlockHandler returns the funds of an expired lock to its pool. Anyone
// can unlock.
type UnlockHandler struct {
	reg    Registry
	ledger pool.Ledger
}

var _ xswap.Handler = UnlockHandler{}

func (h UnlockHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h UnlockHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, amount, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	l, err := h.reg.Remove(db, msg.ID(), xswap.UnixNow(ctx))
	if err != nil {
		return nil, err
	}
	if err := h.ledger.Credit(db, l.Pool, msg.Encoded.OutCoinIndex(), amount); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Debug("swap unlocked", "swap", msg.Encoded, "pool", l.Pool)
	return &xswap.DeliverResult{}, nil
}

func (h UnlockHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*UnlockMsg, uint64, error) {
	var msg UnlockMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, 0, errors.Wrap(err, "load msg")
	}
	l, err := h.reg.Get(db, msg.ID())
	if err != nil {
		return nil, 0, err
	}
	if l.Until > xswap.UnixNow(ctx) {
		return nil, 0, errors.Wrapf(errors.ErrSwapStillInLock, "locked until %d", l.Until)
	}
	amount, err := netAmount(msg.Encoded)
	if err != nil {
		return nil, 0, err
	}
	return &msg, amount, nil
}

// ReleaseHandler pays a locked swap out of custody to its recipient.
type ReleaseHandler struct {
	auth   x.Authenticator
	reg    Registry
	dir    pool.Directory
	ledger pool.Ledger
	coins  pool.CoinResolver
	bank   cash.Ledger
}

var _ xswap.Handler = ReleaseHandler{}

func (h ReleaseHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h ReleaseHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	op, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	msg := op.msg
	if _, err := h.reg.Remove(db, msg.ID(), xswap.UnixNow(ctx)); err != nil {
		return nil, err
	}
	if op.fee != 0 {
		if err := h.ledger.Credit(db, pool.PremiumManagerPool, msg.Encoded.OutCoinIndex(), op.fee); err != nil {
			return nil, err
		}
	}
	if err := h.bank.Transfer(db, op.token, op.custody, msg.Recipient, op.payout); err != nil {
		return nil, errors.Wrap(err, "release")
	}
	xswap.GetLogger(ctx).Debug("swap released", "swap", msg.Encoded, "recipient", msg.Recipient, "fee", op.fee)
	return &xswap.DeliverResult{}, nil
}

type releaseOp struct {
	msg     *ReleaseMsg
	token   xswap.Token
	custody xswap.Holder
	fee     uint64
	payout  uint64
}

func (h ReleaseHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*releaseOp, error) {
	var msg ReleaseMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := swap.CurrentConfiguration(db)
	if err != nil {
		return nil, err
	}
	l, err := h.reg.Get(db, msg.ID())
	if err != nil {
		return nil, err
	}
	if l.Until <= xswap.UnixNow(ctx) {
		return nil, errors.Wrapf(errors.ErrSwapPassedLockPeriod, "locked until %d", l.Until)
	}
	if msg.Recipient != l.Recipient {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "swap is locked for %s", l.Recipient)
	}
	e := msg.Encoded
	if err := conf.Scheme().CheckReleaseSignature(e, crypto.AddressOfHolder(msg.Recipient), msg.Signature[:], msg.Initiator); err != nil {
		return nil, err
	}
	token, err := h.coins.TokenOf(db, e.OutCoinIndex())
	if err != nil {
		return nil, err
	}
	amount, err := netAmount(e)
	if err != nil {
		return nil, err
	}

	var fee uint64
	if e.Flags().FeeWaived {
		signer, err := x.RequireSigner(ctx, h.auth)
		if err != nil {
			return nil, err
		}
		if err := h.dir.AssertPremiumManager(db, signer); err != nil {
			return nil, err
		}
	} else {
		fee = e.ServiceFee(conf.ServiceFeeRate)
		if fee > amount {
			return nil, errors.Wrapf(errors.ErrInvalidAmount, "service fee %d over %d", fee, amount)
		}
	}
	return &releaseOp{
		msg:     &msg,
		token:   token,
		custody: conf.Custody,
		fee:     fee,
		payout:  amount - fee,
	}, nil
}
