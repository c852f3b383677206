package posted

import (
	"encoding/binary"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/crypto"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
)

// SwapLength is the size of a stored posted swap.
const SwapLength = 8 + crypto.AddressLength + xswap.HolderLength

// Swap is the record of a posted swap.
type Swap struct {
	// Pool is the pool the swap is bonded to, zero while unbonded.
	Pool uint64
	// Initiator signs the request and the release.
	Initiator crypto.Address
	// From is the holder that funded the swap and is refunded on cancel.
	// It is zero once the swap is removed.
	From xswap.Holder
}

var _ orm.Model = (*Swap)(nil)

func (s *Swap) Marshal() ([]byte, error) {
	raw := make([]byte, SwapLength)
	binary.BigEndian.PutUint64(raw, s.Pool)
	copy(raw[8:], s.Initiator[:])
	copy(raw[8+crypto.AddressLength:], s.From[:])
	return raw, nil
}

func (s *Swap) Unmarshal(raw []byte) error {
	if len(raw) != SwapLength {
		return errors.Wrapf(errors.ErrModel, "posted swap must be %d bytes, got %d", SwapLength, len(raw))
	}
	s.Pool = binary.BigEndian.Uint64(raw)
	copy(s.Initiator[:], raw[8:])
	copy(s.From[:], raw[8+crypto.AddressLength:])
	return nil
}

func (s *Swap) Validate() error {
	return nil
}

// Exists is false for removed records.
func (s *Swap) Exists() bool {
	return !xswap.IsZeroHolder(s.From)
}
