package cash

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file. Holders and
// tokens are in base58.
type GenesisAccount struct {
	Holder xswap.Holder `json:"holder"`
	Token  xswap.Token  `json:"token"`
	Amount uint64       `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ xswap.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts xswap.Options, kv xswap.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	ctrl := NewController()
	for i, acct := range accts {
		if xswap.IsZeroHolder(acct.Holder) || xswap.IsZeroHolder(acct.Token) {
			return errors.Wrapf(errors.ErrInput, "account %d: holder and token are required", i)
		}
		if err := ctrl.Issue(kv, acct.Token, acct.Holder, acct.Amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
