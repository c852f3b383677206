package locked

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
	"github.com/iov-one/xswap/swap"
)

// Registry stores locks keyed by swap id.
type Registry struct {
	bucket orm.Bucket
}

// NewRegistry returns a registry using the locked bucket.
func NewRegistry() Registry {
	return Registry{bucket: orm.NewBucket("locked")}
}

// Get returns the lock. ErrSwapNotExists is returned if the swap was never
// locked or the lock was removed.
func (r Registry) Get(db xswap.ReadOnlyKVStore, id swap.ID) (*Lock, error) {
	var l Lock
	switch err := r.bucket.One(db, id[:], &l); {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrSwapNotExists, "locked swap %s", id)
	case err != nil:
		return nil, err
	}
	if !l.Exists() {
		return nil, errors.Wrapf(errors.ErrSwapNotExists, "locked swap %s", id)
	}
	return &l, nil
}

// Create stores a new lock. ErrSwapAlreadyExists is returned if the slot
// was ever used.
func (r Registry) Create(db xswap.KVStore, id swap.ID, l *Lock) error {
	err := r.bucket.Create(db, id[:], l)
	if errors.ErrDuplicate.Is(err) {
		return errors.Wrapf(errors.ErrSwapAlreadyExists, "locked swap %s", id)
	}
	return err
}

// Remove marks the lock as removed and returns its last state. A lock
// removed within its period keeps the pool and recipient.
func (r Registry) Remove(db xswap.KVStore, id swap.ID, now uint64) (*Lock, error) {
	l, err := r.Get(db, id)
	if err != nil {
		return nil, err
	}
	removed := &Lock{}
	if l.Until > now {
		removed.Pool = l.Pool
		removed.Recipient = l.Recipient
	}
	if err := r.bucket.Put(db, id[:], removed); err != nil {
		return nil, err
	}
	return l, nil
}
