package pool

import (
	"encoding/binary"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
)

// Owner is the identity owning a pool.
type Owner struct {
	Holder xswap.Holder
}

var _ orm.Model = (*Owner)(nil)

func (o *Owner) Marshal() ([]byte, error) {
	return o.Holder.Bytes(), nil
}

func (o *Owner) Unmarshal(raw []byte) error {
	h, err := xswap.HolderFromBytes(raw)
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	o.Holder = h
	return nil
}

func (o *Owner) Validate() error {
	if xswap.IsZeroHolder(o.Holder) {
		return errors.Wrap(errors.ErrInput, "owner is required")
	}
	return nil
}

// Authorized is the pool an identity acts for.
type Authorized struct {
	Pool uint64
}

var _ orm.Model = (*Authorized)(nil)

func (a *Authorized) Marshal() ([]byte, error) {
	return encodeUint64(a.Pool), nil
}

func (a *Authorized) Unmarshal(raw []byte) error {
	v, err := decodeUint64(raw)
	a.Pool = v
	return err
}

func (a *Authorized) Validate() error {
	return nil
}

// Balance is the amount of one coin a pool holds in custody.
type Balance struct {
	Amount uint64
}

var _ orm.Model = (*Balance)(nil)

func (b *Balance) Marshal() ([]byte, error) {
	return encodeUint64(b.Amount), nil
}

func (b *Balance) Unmarshal(raw []byte) error {
	v, err := decodeUint64(raw)
	b.Amount = v
	return err
}

func (b *Balance) Validate() error {
	return nil
}

func encodeUint64(v uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, v)
	return raw
}

func decodeUint64(raw []byte) (uint64, error) {
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrModel, "want 8 bytes, got %d", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

// poolKey is the big-endian pool index.
func poolKey(pool uint64) []byte {
	return encodeUint64(pool)
}

// balanceKey is the pool index followed by the coin index.
func balanceKey(pool uint64, coinIndex uint8) []byte {
	return append(poolKey(pool), coinIndex)
}
