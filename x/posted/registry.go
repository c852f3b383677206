package posted

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
	"github.com/iov-one/xswap/swap"
)

// Registry stores posted swaps keyed by their encoded form.
type Registry struct {
	bucket orm.Bucket
}

// NewRegistry returns a registry using the posted bucket.
func NewRegistry() Registry {
	return Registry{bucket: orm.NewBucket("posted")}
}

// Get returns the posted swap. ErrSwapNotExists is returned if the swap
// was never posted or was removed.
func (r Registry) Get(db xswap.ReadOnlyKVStore, e swap.Encoded) (*Swap, error) {
	var s Swap
	switch err := r.bucket.One(db, e[:], &s); {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrSwapNotExists, "posted swap %s", e)
	case err != nil:
		return nil, err
	}
	if !s.Exists() {
		return nil, errors.Wrapf(errors.ErrSwapNotExists, "posted swap %s", e)
	}
	return &s, nil
}

// Create stores a new swap. ErrSwapAlreadyExists is returned if the slot
// was ever used.
func (r Registry) Create(db xswap.KVStore, e swap.Encoded, s *Swap) error {
	err := r.bucket.Create(db, e[:], s)
	if errors.ErrDuplicate.Is(err) {
		return errors.Wrapf(errors.ErrSwapAlreadyExists, "posted swap %s", e)
	}
	return err
}

// Bond assigns an unbonded swap to the pool.
func (r Registry) Bond(db xswap.KVStore, e swap.Encoded, pool uint64) error {
	s, err := r.Get(db, e)
	if err != nil {
		return err
	}
	if s.Pool != 0 {
		return errors.Wrapf(errors.ErrSwapBondedToOthers, "bonded to pool %d", s.Pool)
	}
	s.Pool = pool
	return r.bucket.Put(db, e[:], s)
}

// Remove marks the swap as removed and returns its last state. While the
// swap could still be bonded (it expires after now+minBond) the pool and
// initiator are kept; otherwise the whole record is zeroed.
func (r Registry) Remove(db xswap.KVStore, e swap.Encoded, now, minBond uint64) (*Swap, error) {
	s, err := r.Get(db, e)
	if err != nil {
		return nil, err
	}
	removed := &Swap{}
	if e.ExpireTs() >= now+minBond {
		removed.Pool = s.Pool
		removed.Initiator = s.Initiator
	}
	if err := r.bucket.Put(db, e[:], removed); err != nil {
		return nil, err
	}
	return s, nil
}
