package admin

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/store"
	"github.com/iov-one/xswap/weavetest"
	"github.com/iov-one/xswap/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	token := weavetest.RandomHolder(t)
	raw, err := json.Marshal(map[string]interface{}{
		"coins": []GenesisCoin{{Index: 1, Token: token}},
	})
	assert.Nil(t, err)

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(xswap.Options{optKey: raw}, db))

	got, err := NewController().TokenOf(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, token, got)

	raw, err = json.Marshal(map[string]interface{}{
		"coins": []GenesisCoin{{Index: 1, Token: token}, {Index: 1, Token: token}},
	})
	assert.Nil(t, err)
	err = Initializer{}.FromGenesis(xswap.Options{optKey: raw}, store.MemStore())
	assert.IsErr(t, errors.ErrDuplicate, err)
}
