package pool

import (
	"context"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/swap"
	"github.com/iov-one/xswap/x"
	"github.com/iov-one/xswap/x/cash"
)

// CoinResolver returns the token of a whitelisted coin index.
type CoinResolver interface {
	TokenOf(db xswap.ReadOnlyKVStore, coinIndex uint8) (xswap.Token, error)
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r xswap.Registry, auth x.Authenticator, dir Directory, ledger Ledger, coins CoinResolver, bank cash.Ledger) {
	r.Handle(xswap.OpRegisterPool, func() xswap.Msg { return &RegisterPoolMsg{} }, RegisterPoolHandler{auth: auth, dir: dir})
	r.Handle(xswap.OpDeposit, func() xswap.Msg { return &DepositMsg{} }, DepositHandler{auth: auth, dir: dir, ledger: ledger, coins: coins, bank: bank})
	r.Handle(xswap.OpWithdraw, func() xswap.Msg { return &WithdrawMsg{} }, WithdrawHandler{auth: auth, dir: dir, ledger: ledger, coins: coins, bank: bank})
	r.Handle(xswap.OpAddAuthorized, func() xswap.Msg { return &AddAuthorizedMsg{} }, AddAuthorizedHandler{auth: auth, dir: dir})
	r.Handle(xswap.OpTransferPremiumManager, func() xswap.Msg { return &TransferPremiumManagerMsg{} }, TransferPremiumManagerHandler{auth: auth, dir: dir})
}

// RegisterPoolHandler creates a pool owned by the signer.
type RegisterPoolHandler struct {
	auth x.Authenticator
	dir  Directory
}

var _ xswap.Handler = RegisterPoolHandler{}

func (h RegisterPoolHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h RegisterPoolHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.dir.RegisterPool(db, msg.Pool, signer); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Debug("pool registered", "pool", msg.Pool, "owner", signer)
	return &xswap.DeliverResult{Data: poolKey(msg.Pool)}, nil
}

func (h RegisterPoolHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*RegisterPoolMsg, xswap.Holder, error) {
	var msg RegisterPoolMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, xswap.ZeroHolder, errors.Wrap(err, "load msg")
	}
	signer, err := x.RequireSigner(ctx, h.auth)
	if err != nil {
		return nil, signer, err
	}
	return &msg, signer, nil
}

// DepositHandler moves funds from the signer into custody and credits its
// pool.
type DepositHandler struct {
	auth   x.Authenticator
	dir    Directory
	ledger Ledger
	coins  CoinResolver
	bank   cash.Ledger
}

var _ xswap.Handler = DepositHandler{}

func (h DepositHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := validateFunds(ctx, db, tx, &DepositMsg{}, h.auth, h.dir, h.coins); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h DepositHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	var msg DepositMsg
	op, err := validateFunds(ctx, db, tx, &msg, h.auth, h.dir, h.coins)
	if err != nil {
		return nil, err
	}
	if err := h.ledger.Credit(db, msg.Pool, msg.CoinIndex, msg.Amount); err != nil {
		return nil, err
	}
	if err := h.bank.Transfer(db, op.token, op.signer, op.conf.Custody, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "deposit")
	}
	xswap.GetLogger(ctx).Debug("deposit", "pool", msg.Pool, "coin", msg.CoinIndex, "amount", msg.Amount)
	return &xswap.DeliverResult{}, nil
}

// WithdrawHandler debits the pool of the signer and pays out of custody.
type WithdrawHandler struct {
	auth   x.Authenticator
	dir    Directory
	ledger Ledger
	coins  CoinResolver
	bank   cash.Ledger
}

var _ xswap.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	var msg WithdrawMsg
	if _, err := validateFunds(ctx, db, tx, &msg, h.auth, h.dir, h.coins); err != nil {
		return nil, err
	}
	have, err := h.ledger.Balance(db, msg.Pool, msg.CoinIndex)
	if err != nil {
		return nil, err
	}
	if have < msg.Amount {
		return nil, errors.Wrapf(errors.ErrPoolBalanceNotEnough, "pool %d holds %d", msg.Pool, have)
	}
	return &xswap.CheckResult{}, nil
}

func (h WithdrawHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	var msg WithdrawMsg
	op, err := validateFunds(ctx, db, tx, &msg, h.auth, h.dir, h.coins)
	if err != nil {
		return nil, err
	}
	if err := h.ledger.Debit(db, msg.Pool, msg.CoinIndex, msg.Amount); err != nil {
		return nil, err
	}
	if err := h.bank.Transfer(db, op.token, op.conf.Custody, op.signer, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "withdraw")
	}
	xswap.GetLogger(ctx).Debug("withdraw", "pool", msg.Pool, "coin", msg.CoinIndex, "amount", msg.Amount)
	return &xswap.DeliverResult{}, nil
}

type fundsOp struct {
	signer xswap.Holder
	token  xswap.Token
	conf   swap.Configuration
}

type fundsMsg interface {
	xswap.Msg
	funds() Funds
}

func (f Funds) funds() Funds { return f }

// validateFunds does all common pre-processing of deposit and withdraw.
func validateFunds(ctx context.Context, db xswap.KVStore, tx xswap.Tx, msg fundsMsg, auth x.Authenticator, dir Directory, coins CoinResolver) (*fundsOp, error) {
	if err := xswap.LoadMsg(tx, msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	f := msg.funds()
	signer, err := x.RequireSigner(ctx, auth)
	if err != nil {
		return nil, err
	}
	conf, err := swap.CurrentConfiguration(db)
	if err != nil {
		return nil, err
	}
	// Funds of the custody account back every pool.
	if signer == conf.Custody {
		return nil, errors.Wrap(errors.ErrUnauthorized, "custody cannot move pool funds")
	}
	if err := dir.MatchPoolIndex(db, f.Pool, signer); err != nil {
		return nil, err
	}
	token, err := coins.TokenOf(db, f.CoinIndex)
	if err != nil {
		return nil, err
	}
	return &fundsOp{signer: signer, token: token, conf: conf}, nil
}

// AddAuthorizedHandler lets the owner of a pool authorize another
// identity for it.
type AddAuthorizedHandler struct {
	auth x.Authenticator
	dir  Directory
}

var _ xswap.Handler = AddAuthorizedHandler{}

func (h AddAuthorizedHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h AddAuthorizedHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.dir.AddAuthorized(db, msg.Pool, msg.Identity); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Debug("authorized", "pool", msg.Pool, "identity", msg.Identity)
	return &xswap.DeliverResult{}, nil
}

func (h AddAuthorizedHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*AddAuthorizedMsg, error) {
	var msg AddAuthorizedMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer, err := x.RequireSigner(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	pool, err := h.dir.PoolIndexIfOwner(db, signer)
	if err != nil {
		return nil, err
	}
	if pool != msg.Pool {
		return nil, errors.Wrapf(errors.ErrPoolNotPoolOwner, "%s owns pool %d, not %d", signer, pool, msg.Pool)
	}
	return &msg, nil
}

// TransferPremiumManagerHandler lets the premium manager hand pool 0 to
// another identity.
type TransferPremiumManagerHandler struct {
	auth x.Authenticator
	dir  Directory
}

var _ xswap.Handler = TransferPremiumManagerHandler{}

func (h TransferPremiumManagerHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h TransferPremiumManagerHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.dir.TransferPremiumManager(db, signer, msg.NewManager); err != nil {
		return nil, err
	}
	xswap.GetLogger(ctx).Debug("premium manager transferred", "manager", msg.NewManager)
	return &xswap.DeliverResult{}, nil
}

func (h TransferPremiumManagerHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*TransferPremiumManagerMsg, xswap.Holder, error) {
	var msg TransferPremiumManagerMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, xswap.ZeroHolder, errors.Wrap(err, "load msg")
	}
	signer, err := x.RequireSigner(ctx, h.auth)
	if err != nil {
		return nil, signer, err
	}
	if err := h.dir.AssertPremiumManager(db, signer); err != nil {
		return nil, signer, err
	}
	return &msg, signer, nil
}
