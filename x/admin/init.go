package admin

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

const optKey = "admin"

// GenesisCoin is a whitelist entry of the genesis file.
type GenesisCoin struct {
	Index uint8       `json:"index"`
	Token xswap.Token `json:"token"`
}

// Initializer fills the coin whitelist from the genesis file.
type Initializer struct{}

var _ xswap.Initializer = Initializer{}

func (Initializer) FromGenesis(opts xswap.Options, kv xswap.KVStore) error {
	var state struct {
		Coins []GenesisCoin `json:"coins"`
	}
	if err := opts.ReadOptions(optKey, &state); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	ctrl := NewController()
	for _, c := range state.Coins {
		if err := ctrl.AddSupportToken(kv, c.Index, c.Token); err != nil {
			return errors.Wrapf(err, "coin index %d", c.Index)
		}
	}
	return nil
}
