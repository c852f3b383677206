package pool

import (
	"encoding/binary"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

var _ xswap.Msg = (*RegisterPoolMsg)(nil)
var _ xswap.Msg = (*DepositMsg)(nil)
var _ xswap.Msg = (*WithdrawMsg)(nil)
var _ xswap.Msg = (*AddAuthorizedMsg)(nil)
var _ xswap.Msg = (*TransferPremiumManagerMsg)(nil)

// RegisterPoolMsg creates a pool owned by the signer.
type RegisterPoolMsg struct {
	Pool uint64
}

func (RegisterPoolMsg) Opcode() xswap.Opcode { return xswap.OpRegisterPool }

func (m RegisterPoolMsg) Marshal() ([]byte, error) {
	return encodeUint64(m.Pool), nil
}

func (m *RegisterPoolMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpRegisterPool, raw, 8); err != nil {
		return err
	}
	m.Pool = binary.BigEndian.Uint64(raw)
	return nil
}

func (m *RegisterPoolMsg) Validate() error {
	if m.Pool == PremiumManagerPool {
		return errors.Wrap(errors.ErrPoolIndexCannotBeZero, "pool 0 belongs to the premium manager")
	}
	return nil
}

const fundsLength = 8 + 1 + 8

// Funds is the payload of deposit and withdraw.
type Funds struct {
	Pool      uint64
	CoinIndex uint8
	Amount    uint64
}

func (f Funds) marshal() []byte {
	raw := make([]byte, fundsLength)
	binary.BigEndian.PutUint64(raw, f.Pool)
	raw[8] = f.CoinIndex
	binary.BigEndian.PutUint64(raw[9:], f.Amount)
	return raw
}

func (f *Funds) unmarshal(op xswap.Opcode, raw []byte) error {
	if err := xswap.CheckPayload(op, raw, fundsLength); err != nil {
		return err
	}
	f.Pool = binary.BigEndian.Uint64(raw)
	f.CoinIndex = raw[8]
	f.Amount = binary.BigEndian.Uint64(raw[9:])
	return nil
}

func (f Funds) validate() error {
	if f.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "amount must be positive")
	}
	return nil
}

// DepositMsg moves funds of the signer into the pool.
type DepositMsg struct {
	Funds
}

func (DepositMsg) Opcode() xswap.Opcode { return xswap.OpDeposit }

func (m DepositMsg) Marshal() ([]byte, error) { return m.marshal(), nil }

func (m *DepositMsg) Unmarshal(raw []byte) error { return m.unmarshal(xswap.OpDeposit, raw) }

func (m *DepositMsg) Validate() error { return m.validate() }

// WithdrawMsg moves funds of the pool back to the signer.
type WithdrawMsg struct {
	Funds
}

func (WithdrawMsg) Opcode() xswap.Opcode { return xswap.OpWithdraw }

func (m WithdrawMsg) Marshal() ([]byte, error) { return m.marshal(), nil }

func (m *WithdrawMsg) Unmarshal(raw []byte) error { return m.unmarshal(xswap.OpWithdraw, raw) }

func (m *WithdrawMsg) Validate() error { return m.validate() }

// AddAuthorizedMsg lets another identity act for the pool of the signer.
type AddAuthorizedMsg struct {
	Pool     uint64
	Identity xswap.Holder
}

const addAuthorizedLength = 8 + xswap.HolderLength

func (AddAuthorizedMsg) Opcode() xswap.Opcode { return xswap.OpAddAuthorized }

func (m AddAuthorizedMsg) Marshal() ([]byte, error) {
	return append(encodeUint64(m.Pool), m.Identity[:]...), nil
}

func (m *AddAuthorizedMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpAddAuthorized, raw, addAuthorizedLength); err != nil {
		return err
	}
	m.Pool = binary.BigEndian.Uint64(raw)
	copy(m.Identity[:], raw[8:])
	return nil
}

func (m *AddAuthorizedMsg) Validate() error {
	if m.Pool == PremiumManagerPool {
		return errors.Wrap(errors.ErrPoolIndexCannotBeZero, "cannot authorize for the premium manager pool")
	}
	if xswap.IsZeroHolder(m.Identity) {
		return errors.Wrap(errors.ErrInput, "identity is required")
	}
	return nil
}

// TransferPremiumManagerMsg hands pool 0 to a new premium manager.
type TransferPremiumManagerMsg struct {
	NewManager xswap.Holder
}

func (TransferPremiumManagerMsg) Opcode() xswap.Opcode { return xswap.OpTransferPremiumManager }

func (m TransferPremiumManagerMsg) Marshal() ([]byte, error) {
	return m.NewManager.Bytes(), nil
}

func (m *TransferPremiumManagerMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpTransferPremiumManager, raw, xswap.HolderLength); err != nil {
		return err
	}
	copy(m.NewManager[:], raw)
	return nil
}

func (m *TransferPremiumManagerMsg) Validate() error {
	if xswap.IsZeroHolder(m.NewManager) {
		return errors.Wrap(errors.ErrInput, "new manager is required")
	}
	return nil
}
