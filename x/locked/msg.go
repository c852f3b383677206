package locked

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/crypto"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/swap"
)

var _ xswap.Msg = (*LockMsg)(nil)
var _ xswap.Msg = (*UnlockMsg)(nil)
var _ xswap.Msg = (*ReleaseMsg)(nil)

const (
	signedLength = swap.EncodedLength + crypto.SignatureLength + crypto.AddressLength + xswap.HolderLength
	unlockLength = swap.EncodedLength + crypto.AddressLength
)

// Signed is the payload shared by lock and release.
type Signed struct {
	Encoded   swap.Encoded
	Signature [crypto.SignatureLength]byte
	Initiator crypto.Address
	Recipient xswap.Holder
}

func (s Signed) marshal() []byte {
	raw := make([]byte, 0, signedLength)
	raw = append(raw, s.Encoded[:]...)
	raw = append(raw, s.Signature[:]...)
	raw = append(raw, s.Initiator[:]...)
	return append(raw, s.Recipient[:]...)
}

func (s *Signed) unmarshal(op xswap.Opcode, raw []byte) error {
	if err := xswap.CheckPayload(op, raw, signedLength); err != nil {
		return err
	}
	raw = raw[copy(s.Encoded[:], raw):]
	raw = raw[copy(s.Signature[:], raw):]
	raw = raw[copy(s.Initiator[:], raw):]
	copy(s.Recipient[:], raw)
	return nil
}

func (s *Signed) validate() error {
	if err := s.Encoded.CheckVersion(); err != nil {
		return err
	}
	if s.Initiator == crypto.ZeroAddress {
		return errors.Wrap(errors.ErrInput, "initiator is required")
	}
	if xswap.IsZeroHolder(s.Recipient) {
		return errors.Wrap(errors.ErrInput, "recipient is required")
	}
	return nil
}

// ID returns the id the swap is locked under.
func (s Signed) ID() swap.ID {
	return swap.SwapID(s.Encoded, s.Initiator)
}

// LockMsg locks pool funds for a swap requested by the initiator.
type LockMsg struct {
	Signed
}

func (LockMsg) Opcode() xswap.Opcode { return xswap.OpLock }

func (m LockMsg) Marshal() ([]byte, error) { return m.marshal(), nil }

func (m *LockMsg) Unmarshal(raw []byte) error { return m.unmarshal(xswap.OpLock, raw) }

func (m *LockMsg) Validate() error { return m.validate() }

// ReleaseMsg pays a locked swap out to the recipient.
type ReleaseMsg struct {
	Signed
}

func (ReleaseMsg) Opcode() xswap.Opcode { return xswap.OpRelease }

func (m ReleaseMsg) Marshal() ([]byte, error) { return m.marshal(), nil }

func (m *ReleaseMsg) Unmarshal(raw []byte) error { return m.unmarshal(xswap.OpRelease, raw) }

func (m *ReleaseMsg) Validate() error { return m.validate() }

// UnlockMsg returns the funds of an expired lock to its pool.
type UnlockMsg struct {
	Encoded   swap.Encoded
	Initiator crypto.Address
}

func (UnlockMsg) Opcode() xswap.Opcode { return xswap.OpUnlock }

func (m UnlockMsg) Marshal() ([]byte, error) {
	raw := make([]byte, 0, unlockLength)
	raw = append(raw, m.Encoded[:]...)
	return append(raw, m.Initiator[:]...), nil
}

func (m *UnlockMsg) Unmarshal(raw []byte) error {
	if err := xswap.CheckPayload(xswap.OpUnlock, raw, unlockLength); err != nil {
		return err
	}
	copy(m.Initiator[:], raw[copy(m.Encoded[:], raw):])
	return nil
}

func (m *UnlockMsg) Validate() error {
	return m.Encoded.CheckVersion()
}

// ID returns the id the swap is locked under.
func (m UnlockMsg) ID() swap.ID {
	return swap.SwapID(m.Encoded, m.Initiator)
}
