package admin

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

var _ xswap.Msg = (*InitMsg)(nil)
var _ xswap.Msg = (*TransferAdminMsg)(nil)
var _ xswap.Msg = (*AddSupportTokenMsg)(nil)

// InitMsg makes the signer the administrator and the premium manager.
type InitMsg struct{}

func (InitMsg) Opcode() xswap.Opcode { return xswap.OpInit }

func (InitMsg) Marshal() ([]byte, error) { return nil, nil }

func (m *InitMsg) Unmarshal(raw []byte) error {
	return xswap.CheckPayload(xswap.OpInit, raw, 0)
}

func (InitMsg) Validate() error { return nil }

// TransferAdminMsg hands the administration to another identity.
type TransferAdminMsg struct {
	NewAdmin xswap.Holder
}

func (TransferAdminMsg) Opcode() xswap.Opcode { return xswap.OpTransferAdmin }

func (m TransferAdminMsg) Marshal() ([]byte, error) {
	return m.NewAdmin.Bytes(), nil
}

func (m *TransferAdminMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpTransferAdmin, raw, xswap.HolderLength); err != nil {
		return err
	}
	copy(m.NewAdmin[:], raw)
	return nil
}

func (m *TransferAdminMsg) Validate() error {
	if xswap.IsZeroHolder(m.NewAdmin) {
		return errors.Wrap(errors.ErrInput, "new admin is required")
	}
	return nil
}

// AddSupportTokenMsg whitelists a token under a coin index.
type AddSupportTokenMsg struct {
	CoinIndex uint8
	Token     xswap.Token
}

const addSupportTokenLength = 1 + xswap.HolderLength

func (AddSupportTokenMsg) Opcode() xswap.Opcode { return xswap.OpAddSupportToken }

func (m AddSupportTokenMsg) Marshal() ([]byte, error) {
	return append([]byte{m.CoinIndex}, m.Token[:]...), nil
}

func (m *AddSupportTokenMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpAddSupportToken, raw, addSupportTokenLength); err != nil {
		return err
	}
	m.CoinIndex = raw[0]
	copy(m.Token[:], raw[1:])
	return nil
}

func (m *AddSupportTokenMsg) Validate() error {
	if xswap.IsZeroHolder(m.Token) {
		return errors.Wrap(errors.ErrInput, "token is required")
	}
	return nil
}
