package app

import (
	"encoding/json"
	"os"
	"regexp"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

// Genesis is the file format the state is initialized from.
type Genesis struct {
	ChainID    string        `json:"chain_id"`
	AppOptions xswap.Options `json:"app_options"`
}

// LoadGenesis reads a genesis file.
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one call.
func ChainInitializers(inits ...xswap.Initializer) xswap.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []xswap.Initializer
}

// FromGenesis passes opts to all initializers in the list, aborting at the
// first error.
func (c chainInitializer) FromGenesis(opts xswap.Options, kv xswap.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}

const chainIDKey = "_i:chain_id"

var isChainID = regexp.MustCompile(`^[a-zA-Z0-9_.-]{4,128}$`).MatchString

// ChainID returns the chain id stored by InitChain, if any.
func ChainID(kv xswap.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(v), nil
}

// InitChain stores the chain id and runs all initializers with the genesis
// options. A chain can be initialized only once.
func InitChain(kv xswap.KVStore, gen Genesis, init xswap.Initializer) error {
	if !isChainID(gen.ChainID) {
		return errors.Wrapf(errors.ErrInput, "invalid chain id %q", gen.ChainID)
	}
	k := []byte(chainIDKey)
	switch ok, err := kv.Has(k); {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case ok:
		return errors.Wrap(errors.ErrDuplicate, "chain already initialized")
	}
	if err := kv.Set(k, []byte(gen.ChainID)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return init.FromGenesis(gen.AppOptions, kv)
}
