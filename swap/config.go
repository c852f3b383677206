package swap

import (
	"encoding/json"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/gconf"
)

// ConfigPkg is the key the configuration is stored under in gconf.
const ConfigPkg = "swap"

// Protocol defaults.
const (
	DefaultMaxSwapAmount    = 100_000_000_000
	DefaultMinBondPeriod    = 3600
	DefaultMaxBondPeriod    = 7200
	DefaultLockTimePeriod   = 1200
	DefaultLockSafetyMargin = 300
	DefaultServiceFeeRate   = 10
)

// Configuration holds the protocol parameters of a deployment.
type Configuration struct {
	// ChainCode of the chain the swap core runs on.
	ChainCode ChainCode `json:"chain_code"`
	// MaxSwapAmount is the largest amount accepted by post and lock.
	MaxSwapAmount uint64 `json:"max_swap_amount"`
	// MinBondPeriod and MaxBondPeriod bound the time between posting a
	// swap and its expiry, in seconds.
	MinBondPeriod uint64 `json:"min_bond_period"`
	MaxBondPeriod uint64 `json:"max_bond_period"`
	// LockTimePeriod is how long a lock holds pool funds.
	LockTimePeriod uint64 `json:"lock_time_period"`
	// LockSafetyMargin is kept between the end of a lock and the expiry of
	// the swap.
	LockSafetyMargin uint64 `json:"lock_safety_margin"`
	// ServiceFeeRate is charged on release, in 1/10000 of the amount.
	ServiceFeeRate uint64 `json:"service_fee_rate"`
	// Testnet selects the testnet typed data strings.
	Testnet bool `json:"testnet"`
	// Custody is the account that holds posted and pooled funds.
	Custody xswap.Holder `json:"custody"`
}

var _ gconf.Configuration = (*Configuration)(nil)

// DefaultConfiguration returns the protocol defaults for the given custody
// account.
func DefaultConfiguration(custody xswap.Holder) Configuration {
	return Configuration{
		ChainCode:        ChainSolana,
		MaxSwapAmount:    DefaultMaxSwapAmount,
		MinBondPeriod:    DefaultMinBondPeriod,
		MaxBondPeriod:    DefaultMaxBondPeriod,
		LockTimePeriod:   DefaultLockTimePeriod,
		LockSafetyMargin: DefaultLockSafetyMargin,
		ServiceFeeRate:   DefaultServiceFeeRate,
		Custody:          custody,
	}
}

// Validate checks the parameters are usable.
func (c *Configuration) Validate() error {
	switch {
	case c.ChainCode == (ChainCode{}):
		return errors.Wrap(errors.ErrInput, "chain code is required")
	case c.MaxSwapAmount == 0 || c.MaxSwapAmount > MaxUint40:
		return errors.Wrapf(errors.ErrInput, "max swap amount %d out of range", c.MaxSwapAmount)
	case c.MinBondPeriod == 0 || c.MinBondPeriod > c.MaxBondPeriod:
		return errors.Wrapf(errors.ErrInput, "invalid bond period [%d, %d]", c.MinBondPeriod, c.MaxBondPeriod)
	case c.LockTimePeriod == 0:
		return errors.Wrap(errors.ErrInput, "lock time period is required")
	case c.ServiceFeeRate > 10000:
		return errors.Wrapf(errors.ErrInput, "service fee rate %d over 10000", c.ServiceFeeRate)
	case xswap.IsZeroHolder(c.Custody):
		return errors.Wrap(errors.ErrInput, "custody is required")
	}
	return nil
}

func (c *Configuration) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

// Scheme returns the signing scheme of the deployment.
func (c *Configuration) Scheme() Scheme {
	return Scheme{Testnet: c.Testnet}
}

// CheckAmount fails with ErrSwapAmountOverMax if the amount is over the
// ceiling.
func (c *Configuration) CheckAmount(amount uint64) error {
	if amount > c.MaxSwapAmount {
		return errors.Wrapf(errors.ErrSwapAmountOverMax, "%d > %d", amount, c.MaxSwapAmount)
	}
	return nil
}

// CurrentConfiguration loads the stored configuration.
func CurrentConfiguration(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, ConfigPkg, &conf); err != nil {
		return conf, errors.Wrap(err, "swap configuration")
	}
	return conf, nil
}

// Initializer stores the configuration from the genesis options under
// conf.swap.
type Initializer struct{}

var _ xswap.Initializer = Initializer{}

// FromGenesis reads and saves the configuration.
func (Initializer) FromGenesis(opts xswap.Options, db xswap.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(db, opts, ConfigPkg, &conf)
}
