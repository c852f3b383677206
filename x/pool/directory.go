package pool

import (
	"encoding/binary"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
)

// PremiumManagerPool is the index of the pool owned by the premium manager.
const PremiumManagerPool = 0

// Directory maps pool indexes to their owners and identities to the pool
// they are authorized for. Both directions are kept in sync.
type Directory struct {
	owners     orm.Bucket
	authorized orm.Bucket
}

// NewDirectory returns a directory using the poolowner and poolauth
// buckets.
func NewDirectory() Directory {
	return Directory{
		owners:     orm.NewBucket("poolowner"),
		authorized: orm.NewBucket("poolauth"),
	}
}

// RegisterPool creates a pool owned by the identity. ErrDuplicate is
// returned if the pool exists and ErrAddressAlreadyRegistered if the
// identity already acts for a pool.
func (d Directory) RegisterPool(db xswap.KVStore, pool uint64, owner xswap.Holder) error {
	switch ok, err := d.owners.Has(db, poolKey(pool)); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(errors.ErrDuplicate, "pool %d", pool)
	}
	if err := d.authorize(db, pool, owner); err != nil {
		return err
	}
	if err := d.owners.Create(db, poolKey(pool), &Owner{Holder: owner}); err != nil {
		return errors.Wrapf(err, "pool %d", pool)
	}
	return nil
}

// AddAuthorized lets the identity act for the pool.
func (d Directory) AddAuthorized(db xswap.KVStore, pool uint64, identity xswap.Holder) error {
	if pool == PremiumManagerPool {
		return errors.Wrap(errors.ErrPoolIndexCannotBeZero, "cannot authorize for the premium manager pool")
	}
	if _, err := d.OwnerOfPool(db, pool); err != nil {
		return err
	}
	return d.authorize(db, pool, identity)
}

func (d Directory) authorize(db xswap.KVStore, pool uint64, identity xswap.Holder) error {
	switch ok, err := d.authorized.Has(db, identity[:]); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(errors.ErrAddressAlreadyRegistered, "%s", identity)
	}
	return d.authorized.Create(db, identity[:], &Authorized{Pool: pool})
}

// OwnerOfPool returns the owner of the pool. ErrPoolNotRegistered is
// returned for unknown pools.
func (d Directory) OwnerOfPool(db xswap.ReadOnlyKVStore, pool uint64) (xswap.Holder, error) {
	var o Owner
	switch err := d.owners.One(db, poolKey(pool), &o); {
	case errors.ErrNotFound.Is(err):
		return xswap.ZeroHolder, errors.Wrapf(errors.ErrPoolNotRegistered, "pool %d", pool)
	case err != nil:
		return xswap.ZeroHolder, err
	}
	return o.Holder, nil
}

// PoolIndexOf returns the pool the identity acts for.
// ErrPoolNotRegistered is returned if there is none.
func (d Directory) PoolIndexOf(db xswap.ReadOnlyKVStore, identity xswap.Holder) (uint64, error) {
	var a Authorized
	switch err := d.authorized.One(db, identity[:], &a); {
	case errors.ErrNotFound.Is(err):
		return 0, errors.Wrapf(errors.ErrPoolNotRegistered, "%s is not authorized", identity)
	case err != nil:
		return 0, err
	}
	return a.Pool, nil
}

// MatchPoolIndex fails with ErrPoolIndexMismatch unless the identity acts
// for the pool.
func (d Directory) MatchPoolIndex(db xswap.ReadOnlyKVStore, pool uint64, identity xswap.Holder) error {
	got, err := d.PoolIndexOf(db, identity)
	if err != nil {
		return errors.Wrap(errors.ErrPoolIndexMismatch, err.Error())
	}
	if got != pool {
		return errors.Wrapf(errors.ErrPoolIndexMismatch, "%s acts for pool %d, not %d", identity, got, pool)
	}
	return nil
}

// PoolIndexIfOwner returns the pool of the identity, which must be its
// owner. ErrPoolNotPoolOwner is returned for authorized identities.
func (d Directory) PoolIndexIfOwner(db xswap.ReadOnlyKVStore, identity xswap.Holder) (uint64, error) {
	pool, err := d.PoolIndexOf(db, identity)
	if err != nil {
		return 0, err
	}
	owner, err := d.OwnerOfPool(db, pool)
	if err != nil {
		return 0, err
	}
	if owner != identity {
		return 0, errors.Wrapf(errors.ErrPoolNotPoolOwner, "%s does not own pool %d", identity, pool)
	}
	return pool, nil
}

// AssertPremiumManager fails with ErrOnlyPremiumManager unless the
// identity owns pool 0.
func (d Directory) AssertPremiumManager(db xswap.ReadOnlyKVStore, identity xswap.Holder) error {
	owner, err := d.OwnerOfPool(db, PremiumManagerPool)
	if err != nil {
		return errors.Wrap(errors.ErrOnlyPremiumManager, err.Error())
	}
	if owner != identity {
		return errors.Wrapf(errors.ErrOnlyPremiumManager, "%s", identity)
	}
	return nil
}

// TransferPremiumManager hands pool 0 to an identity that does not act
// for any pool yet.
func (d Directory) TransferPremiumManager(db xswap.KVStore, current, next xswap.Holder) error {
	if err := d.AssertPremiumManager(db, current); err != nil {
		return err
	}
	if err := d.authorize(db, PremiumManagerPool, next); err != nil {
		return err
	}
	if err := d.authorized.Delete(db, current[:]); err != nil {
		return errors.Wrap(err, "current premium manager")
	}
	return d.owners.Put(db, poolKey(PremiumManagerPool), &Owner{Holder: next})
}

// Pools returns the owner of every registered pool.
func (d Directory) Pools(db xswap.ReadOnlyKVStore) (map[uint64]xswap.Holder, error) {
	pools := make(map[uint64]xswap.Holder)
	err := d.owners.Iterate(db, func(key, value []byte) error {
		var o Owner
		if err := o.Unmarshal(value); err != nil {
			return err
		}
		pools[binary.BigEndian.Uint64(key)] = o.Holder
		return nil
	})
	return pools, err
}
