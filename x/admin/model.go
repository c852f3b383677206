package admin

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/orm"
)

// Admin is the singleton record of the administrator identity.
type Admin struct {
	Holder xswap.Holder
}

var _ orm.Model = (*Admin)(nil)

func (a *Admin) Marshal() ([]byte, error) {
	return a.Holder.Bytes(), nil
}

func (a *Admin) Unmarshal(raw []byte) error {
	h, err := xswap.HolderFromBytes(raw)
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	a.Holder = h
	return nil
}

func (a *Admin) Validate() error {
	if xswap.IsZeroHolder(a.Holder) {
		return errors.Wrap(errors.ErrInput, "admin is required")
	}
	return nil
}

// SupportedCoin is the token stored in a whitelist slot.
type SupportedCoin struct {
	Token xswap.Token
}

var _ orm.Model = (*SupportedCoin)(nil)

func (c *SupportedCoin) Marshal() ([]byte, error) {
	return c.Token.Bytes(), nil
}

func (c *SupportedCoin) Unmarshal(raw []byte) error {
	h, err := xswap.HolderFromBytes(raw)
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	c.Token = h
	return nil
}

func (c *SupportedCoin) Validate() error {
	if xswap.IsZeroHolder(c.Token) {
		return errors.Wrap(errors.ErrInput, "token is required")
	}
	return nil
}
