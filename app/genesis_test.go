package app

import (
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/store"
	"github.com/iov-one/xswap/weavetest/assert"
)

const dummyKey = "dummy"

type dummyInit struct{}

func (dummyInit) FromGenesis(opts xswap.Options, kv xswap.KVStore) error {
	var value string
	if err := opts.ReadOptions(dummyKey, &value); err != nil {
		return err
	}
	return kv.Set([]byte(dummyKey), []byte(value))
}

type countInit struct {
	called int
}

func (c *countInit) FromGenesis(opts xswap.Options, kv xswap.KVStore) error {
	c.called++
	return nil
}

func TestInitChain(t *testing.T) {
	cases := map[string]struct {
		file         string
		wantParseErr *errors.Error
		wantInitErr  bool
		wantChain    string
		wantCalled   int
		wantValue    []byte
	}{
		"no such file": {
			file:         "testdata/missing.json",
			wantParseErr: errors.ErrInput,
		},
		"proper genesis": {
			file:       "testdata/genesis.json",
			wantChain:  "test-chain-67",
			wantCalled: 1,
			wantValue:  []byte("secret"),
		},
		"options of a wrong type": {
			file:        "testdata/bad_genesis.json",
			wantInitErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			gen, err := LoadGenesis(tc.file)
			if !tc.wantParseErr.Is(err) {
				t.Fatalf("unexpected parse error: %s", err)
			}
			if tc.wantParseErr != nil {
				return
			}

			db := store.MemStore()
			counter := &countInit{}
			err = InitChain(db, gen, ChainInitializers(dummyInit{}, counter))
			if tc.wantInitErr {
				assert.Equal(t, true, err != nil)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantCalled, counter.called)

			chainID, err := ChainID(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantChain, chainID)

			value, err := db.Get([]byte(dummyKey))
			assert.Nil(t, err)
			assert.Equal(t, tc.wantValue, value)

			// A chain is initialized only once.
			err = InitChain(db, gen, counter)
			assert.IsErr(t, errors.ErrDuplicate, err)
			assert.Equal(t, tc.wantCalled, counter.called)
		})
	}
}

func TestInvalidChainID(t *testing.T) {
	db := store.MemStore()
	err := InitChain(db, Genesis{ChainID: "a"}, ChainInitializers())
	assert.IsErr(t, errors.ErrInput, err)
}
