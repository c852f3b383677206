package cash

import (
	"encoding/binary"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
)

const walletLength = 8

// Wallet is the balance of one token held by one holder.
type Wallet struct {
	Amount uint64
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Marshal() ([]byte, error) {
	raw := make([]byte, walletLength)
	binary.BigEndian.PutUint64(raw, w.Amount)
	return raw, nil
}

func (w *Wallet) Unmarshal(raw []byte) error {
	if len(raw) != walletLength {
		return errors.Wrapf(errors.ErrModel, "wallet must be %d bytes, got %d", walletLength, len(raw))
	}
	w.Amount = binary.BigEndian.Uint64(raw)
	return nil
}

func (w *Wallet) Validate() error {
	return nil
}

// walletKey is the holder followed by the token.
func walletKey(token xswap.Token, holder xswap.Holder) []byte {
	key := make([]byte, 0, 2*xswap.HolderLength)
	key = append(key, holder[:]...)
	return append(key, token[:]...)
}
