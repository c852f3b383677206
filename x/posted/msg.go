package posted

import (
	"encoding/binary"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/crypto"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/swap"
)

var _ xswap.Msg = (*PostSwapMsg)(nil)
var _ xswap.Msg = (*BondSwapMsg)(nil)
var _ xswap.Msg = (*CancelSwapMsg)(nil)
var _ xswap.Msg = (*ExecuteSwapMsg)(nil)

const (
	postSwapLength    = swap.EncodedLength + crypto.SignatureLength + crypto.AddressLength + 8
	bondSwapLength    = swap.EncodedLength + 8
	executeSwapLength = swap.EncodedLength + crypto.SignatureLength + crypto.AddressLength
)

// PostSwapMsg posts a swap signed by the initiator, optionally bonded to a
// pool right away.
type PostSwapMsg struct {
	Encoded   swap.Encoded
	Signature [crypto.SignatureLength]byte
	Initiator crypto.Address
	Pool      uint64
}

func (PostSwapMsg) Opcode() xswap.Opcode { return xswap.OpPostSwap }

func (m PostSwapMsg) Marshal() ([]byte, error) {
	raw := make([]byte, 0, postSwapLength)
	raw = append(raw, m.Encoded[:]...)
	raw = append(raw, m.Signature[:]...)
	raw = append(raw, m.Initiator[:]...)
	return binary.BigEndian.AppendUint64(raw, m.Pool), nil
}

func (m *PostSwapMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpPostSwap, raw, postSwapLength); err != nil {
		return err
	}
	raw = raw[copy(m.Encoded[:], raw):]
	raw = raw[copy(m.Signature[:], raw):]
	raw = raw[copy(m.Initiator[:], raw):]
	m.Pool = binary.BigEndian.Uint64(raw)
	return nil
}

func (m *PostSwapMsg) Validate() error {
	if err := m.Encoded.CheckVersion(); err != nil {
		return err
	}
	if m.Initiator == crypto.ZeroAddress {
		return errors.Wrap(errors.ErrInput, "initiator is required")
	}
	return nil
}

// BondSwapMsg bonds a posted swap to the pool of the signer.
type BondSwapMsg struct {
	Encoded swap.Encoded
	Pool    uint64
}

func (BondSwapMsg) Opcode() xswap.Opcode { return xswap.OpBondSwap }

func (m BondSwapMsg) Marshal() ([]byte, error) {
	raw := make([]byte, 0, bondSwapLength)
	raw = append(raw, m.Encoded[:]...)
	return binary.BigEndian.AppendUint64(raw, m.Pool), nil
}

func (m *BondSwapMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpBondSwap, raw, bondSwapLength); err != nil {
		return err
	}
	copy(m.Encoded[:], raw)
	m.Pool = binary.BigEndian.Uint64(raw[swap.EncodedLength:])
	return nil
}

func (m *BondSwapMsg) Validate() error {
	if m.Pool == 0 {
		return errors.Wrap(errors.ErrPoolIndexCannotBeZero, "bond")
	}
	return nil
}

// CancelSwapMsg cancels an expired swap.
type CancelSwapMsg struct {
	Encoded swap.Encoded
}

func (CancelSwapMsg) Opcode() xswap.Opcode { return xswap.OpCancelSwap }

func (m CancelSwapMsg) Marshal() ([]byte, error) {
	return append([]byte(nil), m.Encoded[:]...), nil
}

func (m *CancelSwapMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpCancelSwap, raw, swap.EncodedLength); err != nil {
		return err
	}
	copy(m.Encoded[:], raw)
	return nil
}

func (m *CancelSwapMsg) Validate() error {
	return nil
}

// ExecuteSwapMsg executes a bonded swap with the release signature of the
// initiator for the recipient.
type ExecuteSwapMsg struct {
	Encoded   swap.Encoded
	Signature [crypto.SignatureLength]byte
	Recipient crypto.Address
}

func (ExecuteSwapMsg) Opcode() xswap.Opcode { return xswap.OpExecuteSwap }

func (m ExecuteSwapMsg) Marshal() ([]byte, error) {
	raw := make([]byte, 0, executeSwapLength)
	raw = append(raw, m.Encoded[:]...)
	raw = append(raw, m.Signature[:]...)
	return append(raw, m.Recipient[:]...), nil
}

func (m *ExecuteSwapMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpExecuteSwap, raw, executeSwapLength); err != nil {
		return err
	}
	raw = raw[copy(m.Encoded[:], raw):]
	raw = raw[copy(m.Signature[:], raw):]
	copy(m.Recipient[:], raw)
	return nil
}

func (m *ExecuteSwapMsg) Validate() error {
	return nil
}
