package swap

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/gconf"
	"github.com/iov-one/xswap/store"
	"github.com/iov-one/xswap/weavetest/assert"
)

func testCustody() xswap.Holder {
	var h xswap.Holder
	h[0] = 0xcc
	h[31] = 0x01
	return h
}

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Configuration)
		wantErr *errors.Error
	}{
		"defaults": {
			mutate: func(*Configuration) {},
		},
		"missing chain code": {
			mutate:  func(c *Configuration) { c.ChainCode = ChainCode{} },
			wantErr: errors.ErrInput,
		},
		"zero max amount": {
			mutate:  func(c *Configuration) { c.MaxSwapAmount = 0 },
			wantErr: errors.ErrInput,
		},
		"max amount over 40 bits": {
			mutate:  func(c *Configuration) { c.MaxSwapAmount = MaxUint40 + 1 },
			wantErr: errors.ErrInput,
		},
		"bond periods inverted": {
			mutate:  func(c *Configuration) { c.MinBondPeriod = c.MaxBondPeriod + 1 },
			wantErr: errors.ErrInput,
		},
		"no lock period": {
			mutate:  func(c *Configuration) { c.LockTimePeriod = 0 },
			wantErr: errors.ErrInput,
		},
		"fee rate over 100%": {
			mutate:  func(c *Configuration) { c.ServiceFeeRate = 10001 },
			wantErr: errors.ErrInput,
		},
		"no custody": {
			mutate:  func(c *Configuration) { c.Custody = xswap.ZeroHolder },
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			c := DefaultConfiguration(testCustody())
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestConfigurationCheckAmount(t *testing.T) {
	c := DefaultConfiguration(testCustody())
	assert.Nil(t, c.CheckAmount(DefaultMaxSwapAmount))
	assert.IsErr(t, errors.ErrSwapAmountOverMax, c.CheckAmount(DefaultMaxSwapAmount+1))
	assert.Equal(t, Scheme{}, c.Scheme())
	c.Testnet = true
	assert.Equal(t, Scheme{Testnet: true}, c.Scheme())
}

func TestInitializer(t *testing.T) {
	conf := DefaultConfiguration(testCustody())
	conf.Testnet = true
	raw, err := json.Marshal(map[string]interface{}{
		"conf": map[string]interface{}{ConfigPkg: conf},
	})
	assert.Nil(t, err)

	db := store.MemStore()
	_, err = CurrentConfiguration(db)
	assert.IsErr(t, errors.ErrNotFound, err)

	assert.Nil(t, Initializer{}.FromGenesis(xswap.Options{"conf": raw}, db))
	got, err := CurrentConfiguration(db)
	assert.Nil(t, err)
	assert.Equal(t, conf, got)

	assert.Nil(t, gconf.Save(db, ConfigPkg, &got))
}
