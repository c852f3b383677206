package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/store"
	"github.com/iov-one/xswap/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	token := weavetest.RandomHolder(t)
	alice := weavetest.NewHolder()

	raw, err := json.Marshal([]GenesisAccount{
		{Holder: alice, Token: token, Amount: 100},
		{Holder: alice, Token: token, Amount: 20},
	})
	require.NoError(t, err)

	kv := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(xswap.Options{optKey: raw}, kv))

	got, err := NewController().Balance(kv, token, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), got)
}

func TestGenesisRejectsZeroHolder(t *testing.T) {
	raw, err := json.Marshal([]GenesisAccount{
		{Token: weavetest.RandomHolder(t), Amount: 1},
	})
	require.NoError(t, err)

	err = Initializer{}.FromGenesis(xswap.Options{optKey: raw}, store.MemStore())
	assert.True(t, errors.ErrInput.Is(err), "got %v", err)
}

func TestGenesisEmpty(t *testing.T) {
	require.NoError(t, Initializer{}.FromGenesis(xswap.Options{}, store.MemStore()))
}
