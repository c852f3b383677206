package cash

import (
	"math"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
)

// Ledger moves tokens between holders. The swap state machines only reach
// the in-chain assets through it.
type Ledger interface {
	Balance(db xswap.ReadOnlyKVStore, token xswap.Token, holder xswap.Holder) (uint64, error)
	Transfer(db xswap.KVStore, token xswap.Token, from, to xswap.Holder, amount uint64) error
}

// Controller is the Ledger implementation storing wallets in a bucket.
type Controller struct {
	bucket orm.Bucket
}

var _ Ledger = Controller{}

// NewController returns a controller using the cash bucket.
func NewController() Controller {
	return Controller{bucket: orm.NewBucket("cash")}
}

// Balance returns the amount of the token held. Unknown wallets are empty.
func (c Controller) Balance(db xswap.ReadOnlyKVStore, token xswap.Token, holder xswap.Holder) (uint64, error) {
	var w Wallet
	switch err := c.bucket.One(db, walletKey(token, holder), &w); {
	case errors.ErrNotFound.Is(err):
		return 0, nil
	case err != nil:
		return 0, err
	}
	return w.Amount, nil
}

// Transfer moves the amount of the token. Moving nothing is a no-op.
// ErrInsufficientFunds is returned if the sender holds less than the
// amount, also when moving to the sender itself.
func (c Controller) Transfer(db xswap.KVStore, token xswap.Token, from, to xswap.Holder, amount uint64) error {
	if amount == 0 {
		return nil
	}
	have, err := c.Balance(db, token, from)
	if err != nil {
		return err
	}
	if have < amount {
		return errors.Wrapf(errors.ErrInsufficientFunds, "%s holds %d, need %d", from, have, amount)
	}
	if from == to {
		return nil
	}
	if err := c.set(db, token, from, have-amount); err != nil {
		return err
	}
	return c.Issue(db, token, to, amount)
}

// Issue adds newly minted tokens to the holder. It fails with ErrOverflow
// if the balance would not fit.
func (c Controller) Issue(db xswap.KVStore, token xswap.Token, to xswap.Holder, amount uint64) error {
	have, err := c.Balance(db, token, to)
	if err != nil {
		return err
	}
	if amount > math.MaxUint64-have {
		return errors.Wrapf(errors.ErrOverflow, "%s balance %d + %d", to, have, amount)
	}
	return c.set(db, token, to, have+amount)
}

func (c Controller) set(db xswap.KVStore, token xswap.Token, holder xswap.Holder, amount uint64) error {
	key := walletKey(token, holder)
	if amount == 0 {
		if err := c.bucket.Delete(db, key); err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		return nil
	}
	return c.bucket.Put(db, key, &Wallet{Amount: amount})
}
