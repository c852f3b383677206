package admin

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
)

var adminKey = []byte{}

// Controller reads and updates the administrator and the coin whitelist.
type Controller struct {
	admin orm.Bucket
	coins orm.Bucket
}

// NewController returns a controller using the admin and coin buckets.
func NewController() Controller {
	return Controller{
		admin: orm.NewBucket("admin"),
		coins: orm.NewBucket("coin"),
	}
}

// Admin returns the administrator. ErrNotFound is returned before the
// deployment is initialized.
func (c Controller) Admin(db xswap.ReadOnlyKVStore) (xswap.Holder, error) {
	var a Admin
	if err := c.admin.One(db, adminKey, &a); err != nil {
		return xswap.ZeroHolder, errors.Wrap(err, "admin")
	}
	return a.Holder, nil
}

// AssertAdmin fails with ErrUnauthorized unless the holder is the
// administrator.
func (c Controller) AssertAdmin(db xswap.ReadOnlyKVStore, h xswap.Holder) error {
	admin, err := c.Admin(db)
	if err != nil {
		return err
	}
	if admin != h {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the admin", h)
	}
	return nil
}

// SetAdmin stores the administrator.
func (c Controller) SetAdmin(db xswap.KVStore, h xswap.Holder) error {
	return c.admin.Put(db, adminKey, &Admin{Holder: h})
}

// TokenOf returns the token of a whitelisted coin. ErrCoinNotSupported is
// returned for an empty slot.
func (c Controller) TokenOf(db xswap.ReadOnlyKVStore, coinIndex uint8) (xswap.Token, error) {
	var coin SupportedCoin
	switch err := c.coins.One(db, []byte{coinIndex}, &coin); {
	case errors.ErrNotFound.Is(err):
		return xswap.ZeroHolder, errors.Wrapf(errors.ErrCoinNotSupported, "coin index %d", coinIndex)
	case err != nil:
		return xswap.ZeroHolder, err
	}
	return coin.Token, nil
}

// AddSupportToken fills a whitelist slot. ErrDuplicate is returned if the
// slot is taken.
func (c Controller) AddSupportToken(db xswap.KVStore, coinIndex uint8, token xswap.Token) error {
	return c.coins.Create(db, []byte{coinIndex}, &SupportedCoin{Token: token})
}

// Coins returns all whitelisted tokens by coin index.
func (c Controller) Coins(db xswap.ReadOnlyKVStore) (map[uint8]xswap.Token, error) {
	coins := make(map[uint8]xswap.Token)
	err := c.coins.Iterate(db, func(key, value []byte) error {
		var coin SupportedCoin
		if err := coin.Unmarshal(value); err != nil {
			return err
		}
		coins[key[0]] = coin.Token
		return nil
	})
	return coins, err
}
