package admin

import (
	"context"
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/store"
	"github.com/iov-one/xswap/weavetest"
	"github.com/iov-one/xswap/weavetest/assert"
)

type fakePools map[uint64]xswap.Holder

func (p fakePools) RegisterPool(db xswap.KVStore, pool uint64, owner xswap.Holder) error {
	if _, ok := p[pool]; ok {
		return errors.ErrDuplicate
	}
	p[pool] = owner
	return nil
}

func TestInitHandler(t *testing.T) {
	alice := weavetest.NewHolder()
	bob := weavetest.NewHolder()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := NewController()

	db := store.MemStore()
	pools := fakePools{}
	h := InitHandler{auth: auth, ctrl: ctrl, pools: pools}

	tx := &weavetest.Tx{Msg: &InitMsg{}}

	_, err := h.Deliver(context.Background(), db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	ctx := auth.SetSigners(context.Background(), alice)
	_, err = h.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = h.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	admin, err := ctrl.Admin(db)
	assert.Nil(t, err)
	assert.Equal(t, alice, admin)
	assert.Equal(t, alice, pools[0])

	// only once
	ctx = auth.SetSigners(context.Background(), bob)
	_, err = h.Check(ctx, db, tx)
	assert.IsErr(t, errors.ErrDuplicate, err)
}

func TestAdminHandlers(t *testing.T) {
	admin := weavetest.NewHolder()
	other := weavetest.NewHolder()
	token := weavetest.RandomHolder(t)
	auth := &weavetest.CtxAuth{Key: "auth"}

	cases := map[string]struct {
		signer         xswap.Holder
		handler        func(Controller) xswap.Handler
		msg            xswap.Msg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		after          func(t *testing.T, db xswap.KVStore, ctrl Controller)
	}{
		"transfer admin": {
			signer:  admin,
			handler: func(c Controller) xswap.Handler { return TransferAdminHandler{auth: auth, ctrl: c} },
			msg:     &TransferAdminMsg{NewAdmin: other},
			after: func(t *testing.T, db xswap.KVStore, ctrl Controller) {
				got, err := ctrl.Admin(db)
				assert.Nil(t, err)
				assert.Equal(t, other, got)
			},
		},
		"transfer admin by a stranger": {
			signer:         other,
			handler:        func(c Controller) xswap.Handler { return TransferAdminHandler{auth: auth, ctrl: c} },
			msg:            &TransferAdminMsg{NewAdmin: other},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"transfer admin to nobody": {
			signer:         admin,
			handler:        func(c Controller) xswap.Handler { return TransferAdminHandler{auth: auth, ctrl: c} },
			msg:            &TransferAdminMsg{},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"add support token": {
			signer:  admin,
			handler: func(c Controller) xswap.Handler { return AddSupportTokenHandler{auth: auth, ctrl: c} },
			msg:     &AddSupportTokenMsg{CoinIndex: 2, Token: token},
			after: func(t *testing.T, db xswap.KVStore, ctrl Controller) {
				got, err := ctrl.TokenOf(db, 2)
				assert.Nil(t, err)
				assert.Equal(t, token, got)

				coins, err := ctrl.Coins(db)
				assert.Nil(t, err)
				assert.Equal(t, 2, len(coins))
			},
		},
		"add support token twice": {
			signer:         admin,
			handler:        func(c Controller) xswap.Handler { return AddSupportTokenHandler{auth: auth, ctrl: c} },
			msg:            &AddSupportTokenMsg{CoinIndex: 1, Token: token},
			wantDeliverErr: errors.ErrDuplicate,
		},
		"add support token by a stranger": {
			signer:         other,
			handler:        func(c Controller) xswap.Handler { return AddSupportTokenHandler{auth: auth, ctrl: c} },
			msg:            &AddSupportTokenMsg{CoinIndex: 2, Token: token},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"add zero token": {
			signer:         admin,
			handler:        func(c Controller) xswap.Handler { return AddSupportTokenHandler{auth: auth, ctrl: c} },
			msg:            &AddSupportTokenMsg{CoinIndex: 2},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			assert.Nil(t, ctrl.SetAdmin(db, admin))
			assert.Nil(t, ctrl.AddSupportToken(db, 1, weavetest.RandomHolder(t)))

			h := tc.handler(ctrl)
			ctx := auth.SetSigners(context.Background(), tc.signer)
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := h.Check(ctx, cache, tx)
			assert.IsErr(t, tc.wantCheckErr, err)
			cache.Discard()

			_, err = h.Deliver(ctx, db, tx)
			assert.IsErr(t, tc.wantDeliverErr, err)

			if tc.after != nil {
				tc.after(t, db, ctrl)
			}
		})
	}
}

func TestTokenOfEmptySlot(t *testing.T) {
	_, err := NewController().TokenOf(store.MemStore(), 7)
	assert.IsErr(t, errors.ErrCoinNotSupported, err)
}
