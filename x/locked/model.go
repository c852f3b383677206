package locked

import (
	"encoding/binary"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
)

// LockLength is the size of a stored lock.
const LockLength = 8 + 8 + xswap.HolderLength

// Lock is the record of a locked swap.
type Lock struct {
	// Pool the funds were taken from.
	Pool uint64
	// Until is the end of the lock period. Zero for removed records.
	Until uint64
	// Recipient of the release.
	Recipient xswap.Holder
}

var _ orm.Model = (*Lock)(nil)

func (l *Lock) Marshal() ([]byte, error) {
	raw := make([]byte, LockLength)
	binary.BigEndian.PutUint64(raw, l.Pool)
	binary.BigEndian.PutUint64(raw[8:], l.Until)
	copy(raw[16:], l.Recipient[:])
	return raw, nil
}

func (l *Lock) Unmarshal(raw []byte) error {
	if len(raw) != LockLength {
		return errors.Wrapf(errors.ErrModel, "lock must be %d bytes, got %d", LockLength, len(raw))
	}
	l.Pool = binary.BigEndian.Uint64(raw)
	l.Until = binary.BigEndian.Uint64(raw[8:])
	copy(l.Recipient[:], raw[16:])
	return nil
}

func (l *Lock) Validate() error {
	return nil
}

// Exists is false for removed records.
func (l *Lock) Exists() bool {
	return l.Until != 0
}
