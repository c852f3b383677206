package posted

import (
	"context"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/swap"
	"github.com/iov-one/xswap/x"
	"github.com/iov-one/xswap/x/cash"
	"github.com/iov-one/xswap/x/pool"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r xswap.Registry, auth x.Authenticator, reg Registry, dir pool.Directory, coins pool.CoinResolver, bank cash.Ledger) {
	r.Handle(xswap.OpPostSwap, func() xswap.Msg { return &PostSwapMsg{} }, PostSwapHandler{auth: auth, reg: reg, dir: dir, coins: coins, bank: bank})
	r.Handle(xswap.OpBondSwap, func() xswap.Msg { return &BondSwapMsg{} }, BondSwapHandler{auth: auth, reg: reg, dir: dir})
	r.Handle(xswap.OpCancelSwap, func() xswap.Msg { return &CancelSwapMsg{} }, CancelSwapHandler{reg: reg, coins: coins, bank: bank})
	r.Handle(xswap.OpExecuteSwap, func() xswap.Msg { return &ExecuteSwapMsg{} }, ExecuteSwapHandler{reg: reg, dir: dir, coins: coins, bank: bank})
}

// PostSwapHandler accepts a signed swap request and moves the amount into
// custody.
type PostSwapHandler struct {
	auth  x.Authenticator
	reg   Registry
	dir   pool.Directory
	coins pool.CoinResolver
	bank  cash.Ledger
}

var _ xswap.Handler = PostSwapHandler{}

func (h PostSwapHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h PostSwapHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	op, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	msg := op.msg
	s := &Swap{Pool: msg.Pool, Initiator: msg.Initiator, From: op.signer}
	if err := h.reg.Create(db, msg.Encoded, s); err != nil {
		return nil, err
	}
	if err := h.bank.Transfer(db, op.token, op.signer, op.conf.Custody, msg.Encoded.Amount()); err != nil {
		return nil, errors.Wrap(err, "post swap")
	}
	xswap.GetLogger(ctx).Debug("swap posted", "swap", msg.Encoded, "pool", msg.Pool)
	return &xswap.DeliverResult{Data: msg.Encoded[:]}, nil
}

type postOp struct {
	msg    *PostSwapMsg
	signer xswap.Holder
	token  xswap.Token
	conf   swap.Configuration
}

func (h PostSwapHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*postOp, error) {
	var msg PostSwapMsg
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
	if signer == conf.Custody {
		return nil, errors.Wrap(errors.ErrUnauthorized, "custody cannot fund a swap")
	}
	e := msg.Encoded
	if e.InChain() != conf.ChainCode {
		return nil, errors.Wrapf(errors.ErrInChainMismatch, "in chain %s", e.InChain())
	}
	token, err := h.coins.TokenOf(db, e.InCoinIndex())
	if err != nil {
		return nil, err
	}
	if err := conf.CheckAmount(e.Amount()); err != nil {
		return nil, err
	}
	now := xswap.UnixNow(ctx)
	switch expire := e.ExpireTs(); {
	case expire < now+conf.MinBondPeriod:
		return nil, errors.Wrapf(errors.ErrSwapExpireTooEarly, "expires at %d", expire)
	case expire > now+conf.MaxBondPeriod:
		return nil, errors.Wrapf(errors.ErrSwapExpireTooLate, "expires at %d", expire)
	}
	if err := conf.Scheme().CheckRequestSignature(e, msg.Signature[:], msg.Initiator); err != nil {
		return nil, err
	}
	if msg.Pool != 0 {
		if _, err := h.dir.OwnerOfPool(db, msg.Pool); err != nil {
			return nil, err
		}
	}
	return &postOp{msg: &msg, signer: signer, token: token, conf: conf}, nil
}

// BondSwapHandler bonds a posted swap to the pool of the signer.
type BondSwapHandler struct {
	auth x.Authenticator
	reg  Registry
	dir  pool.Directory
}

var _ xswap.Handler = BondSwapHandler{}

func (h BondSwapHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h BondSwapHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.reg.Bond(db, msg.Encoded, msg.Pool); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Debug("swap bonded", "swap", msg.Encoded, "pool", msg.Pool)
	return &xswap.DeliverResult{}, nil
}

func (h BondSwapHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*BondSwapMsg, error) {
	var msg BondSwapMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer, err := x.RequireSigner(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	s, err := h.reg.Get(db, msg.Encoded)
	if err != nil {
		return nil, err
	}
	if s.Pool != 0 {
		return nil, errors.Wrapf(errors.ErrSwapBondedToOthers, "bonded to pool %d", s.Pool)
	}
	if err := h.dir.MatchPoolIndex(db, msg.Pool, signer); err != nil {
		return nil, err
	}
	return &msg, nil
}

// CancelSwapHandler removes an expired swap and refunds the poster.
type CancelSwapHandler struct {
	reg   Registry
	coins pool.CoinResolver
	bank  cash.Ledger
}

var _ xswap.Handler = CancelSwapHandler{}

func (h CancelSwapHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h CancelSwapHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := swap.CurrentConfiguration(db)
	if err != nil {
		return nil, err
	}
	e := msg.Encoded
	token, err := h.coins.TokenOf(db, e.InCoinIndex())
	if err != nil {
		return nil, err
	}
	s, err := h.reg.Remove(db, e, xswap.UnixNow(ctx), conf.MinBondPeriod)
	if err != nil {
		return nil, err
	}
	if err := h.bank.Transfer(db, token, conf.Custody, s.From, e.Amount()); err != nil {
		return nil, errors.Wrap(err, "refund")
	}
	xswap.GetLogger(ctx).Debug("swap cancelled", "swap", e)
	return &xswap.DeliverResult{}, nil
}

func (h CancelSwapHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*CancelSwapMsg, error) {
	var msg CancelSwapMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.reg.Get(db, msg.Encoded); err != nil {
		return nil, err
	}
	if expire := msg.Encoded.ExpireTs(); expire > xswap.UnixNow(ctx) {
		return nil, errors.Wrapf(errors.ErrSwapCannotCancelBeforeExpire, "expires at %d", expire)
	}
	return &msg, nil
}

// ExecuteSwapHandler pays a bonded swap out to the owner of its pool.
type ExecuteSwapHandler struct {
	reg   Registry
	dir   pool.Directory
	coins pool.CoinResolver
	bank  cash.Ledger
}

var _ xswap.Handler = ExecuteSwapHandler{}

func (h ExecuteSwapHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h ExecuteSwapHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	op, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	e := op.msg.Encoded
	if _, err := h.reg.Remove(db, e, xswap.UnixNow(ctx), op.conf.MinBondPeriod); err != nil {
		return nil, err
	}
	if err := h.bank.Transfer(db, op.token, op.conf.Custody, op.owner, e.Amount()); err != nil {
		return nil, errors.Wrap(err, "execute")
	}
	xswap.GetLogger(ctx).Debug("swap executed", "swap", e, "pool", op.swap.Pool)
	return &xswap.DeliverResult{}, nil
}

type executeOp struct {
	msg   *ExecuteSwapMsg
	swap  *Swap
	owner xswap.Holder
	token xswap.Token
	conf  swap.Configuration
}

func (h ExecuteSwapHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*executeOp, error) {
	var msg ExecuteSwapMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := swap.CurrentConfiguration(db)
	if err != nil {
		return nil, err
	}
	s, err := h.reg.Get(db, msg.Encoded)
	if err != nil {
		return nil, err
	}
	if s.Pool == 0 {
		return nil, errors.Wrap(errors.ErrSwapNotBonded, "execute")
	}
	if err := conf.Scheme().CheckReleaseSignature(msg.Encoded, msg.Recipient, msg.Signature[:], s.Initiator); err != nil {
		return nil, err
	}
	owner, err := h.dir.OwnerOfPool(db, s.Pool)
	if err != nil {
		return nil, err
	}
	token, err := h.coins.TokenOf(db, msg.Encoded.InCoinIndex())
	if err != nil {
		return nil, err
	}
	return &executeOp{msg: &msg, swap: s, owner: owner, token: token, conf: conf}, nil
}
