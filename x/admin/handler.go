package admin

import (
	"context"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/x"
)

// PoolRegistrar registers the premium manager pool on init.
type PoolRegistrar interface {
	RegisterPool(db xswap.KVStore, pool uint64, owner xswap.Holder) error
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r xswap.Registry, auth x.Authenticator, ctrl Controller, pools PoolRegistrar) {
	r.Handle(xswap.OpInit, func() xswap.Msg { return &InitMsg{} }, InitHandler{auth: auth, ctrl: ctrl, pools: pools})
	r.Handle(xswap.OpTransferAdmin, func() xswap.Msg { return &TransferAdminMsg{} }, TransferAdminHandler{auth: auth, ctrl: ctrl})
	r.Handle(xswap.OpAddSupportToken, func() xswap.Msg { return &AddSupportTokenMsg{} }, AddSupportTokenHandler{auth: auth, ctrl: ctrl})
}

// InitHandler initializes a deployment once.
type InitHandler struct {
	auth  x.Authenticator
	ctrl  Controller
	pools PoolRegistrar
}

var _ xswap.Handler = InitHandler{}

func (h InitHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

// Deliver makes the signer the administrator and the owner of pool 0.
func (h InitHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetAdmin(db, signer); err != nil {
		return nil, errors.Wrap(err, "cannot store admin")
	}
	if err := h.pools.RegisterPool(db, 0, signer); err != nil {
		return nil, errors.Wrap(err, "premium manager")
	}
	xswap.GetLogger(ctx).Debug("initialized", "admin", signer)
	return &xswap.DeliverResult{Data: signer.Bytes()}, nil
}

func (h InitHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (xswap.Holder, error) {
	var msg InitMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return xswap.ZeroHolder, errors.Wrap(err, "load msg")
	}
	signer, err := x.RequireSigner(ctx, h.auth)
	if err != nil {
		return signer, err
	}
	switch _, err := h.ctrl.Admin(db); {
	case err == nil:
		return signer, errors.Wrap(errors.ErrDuplicate, "already initialized")
	case !errors.ErrNotFound.Is(err):
		return signer, err
	}
	return signer, nil
}

// TransferAdminHandler lets the administrator name a successor.
type TransferAdminHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ xswap.Handler = TransferAdminHandler{}

func (h TransferAdminHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h TransferAdminHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetAdmin(db, msg.NewAdmin); err != nil {
		return nil, errors.Wrap(err, "cannot store admin")
	}
	xswap.GetLogger(ctx).Debug("admin transferred", "admin", msg.NewAdmin)
	return &xswap.DeliverResult{}, nil
}

func (h TransferAdminHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*TransferAdminMsg, error) {
	var msg TransferAdminMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer, err := x.RequireSigner(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.AssertAdmin(db, signer); err != nil {
		return nil, err
	}
	return &msg, nil
}

// AddSupportTokenHandler whitelists a coin.
type AddSupportTokenHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ xswap.Handler = AddSupportTokenHandler{}

func (h AddSupportTokenHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, nil
}

func (h AddSupportTokenHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.AddSupportToken(db, msg.CoinIndex, msg.Token); err != nil {
		return nil, errors.Wrapf(err, "coin index %d", msg.CoinIndex)
	}
	xswap.GetLogger(ctx).Debug("coin supported", "coin", msg.CoinIndex, "token", msg.Token)
	return &xswap.DeliverResult{}, nil
}

func (h AddSupportTokenHandler) validate(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*AddSupportTokenMsg, error) {
	var msg AddSupportTokenMsg
	if err := xswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer, err := x.RequireSigner(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.AssertAdmin(db, signer); err != nil {
		return nil, err
	}
	return &msg, nil
}
