package pool

import (
	"math"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
)

// Ledger keeps the balance of every pool and coin. A balance slot is
// created by the first credit.
type Ledger struct {
	bucket orm.Bucket
}

// NewLedger returns a ledger using the balance bucket.
func NewLedger() Ledger {
	return Ledger{bucket: orm.NewBucket("balance")}
}

// Balance returns the amount of the coin held for the pool.
func (l Ledger) Balance(db xswap.ReadOnlyKVStore, pool uint64, coinIndex uint8) (uint64, error) {
	var b Balance
	switch err := l.bucket.One(db, balanceKey(pool, coinIndex), &b); {
	case errors.ErrNotFound.Is(err):
		return 0, nil
	case err != nil:
		return 0, err
	}
	return b.Amount, nil
}

// Credit adds to the pool balance. ErrOverflow is returned if the
// balance would not fit.
func (l Ledger) Credit(db xswap.KVStore, pool uint64, coinIndex uint8, amount uint64) error {
	have, err := l.Balance(db, pool, coinIndex)
	if err != nil {
		return err
	}
	if amount > math.MaxUint64-have {
		return errors.Wrapf(errors.ErrOverflow, "pool %d coin %d: %d + %d", pool, coinIndex, have, amount)
	}
	return l.bucket.Put(db, balanceKey(pool, coinIndex), &Balance{Amount: have + amount})
}

// Debit takes from the pool balance. ErrPoolBalanceNotEnough is returned
// if the pool holds less than the amount.
func (l Ledger) Debit(db xswap.KVStore, pool uint64, coinIndex uint8, amount uint64) error {
	have, err := l.Balance(db, pool, coinIndex)
	if err != nil {
		return err
	}
	if have < amount {
		return errors.Wrapf(errors.ErrPoolBalanceNotEnough, "pool %d coin %d holds %d, need %d", pool, coinIndex, have, amount)
	}
	return l.bucket.Put(db, balanceKey(pool, coinIndex), &Balance{Amount: have - amount})
}
