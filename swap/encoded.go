package swap

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

// EncodedLength is the size of an encoded swap.
const EncodedLength = 32

// MaxUint40 is the largest value of the 40 bit fields.
const MaxUint40 = 1<<40 - 1

// Encoded is the packed swap descriptor. It is immutable and is used as the
// key of posted swaps.
type Encoded [EncodedLength]byte

// ParseEncoded reads a descriptor from its raw form.
func ParseEncoded(raw []byte) (Encoded, error) {
	var e Encoded
	if len(raw) != EncodedLength {
		return e, errors.Wrapf(errors.ErrInvalidEncodedLength, "got %d bytes", len(raw))
	}
	copy(e[:], raw)
	return e, nil
}

// ParseEncodedHex reads a hex descriptor, with or without the 0x prefix.
func ParseEncodedHex(s string) (Encoded, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return Encoded{}, errors.Wrap(errors.ErrInput, err.Error())
	}
	return ParseEncoded(raw)
}

func uint40(b []byte) uint64 {
	return uint64(b[0])<<32 | uint64(binary.BigEndian.Uint32(b[1:5]))
}

func putUint40(b []byte, v uint64) {
	b[0] = byte(v >> 32)
	binary.BigEndian.PutUint32(b[1:5], uint32(v))
}

// Version of the protocol the swap was encoded for.
func (e Encoded) Version() uint8 { return e[0] }

// Amount to be swapped, in the smallest unit of the in coin.
func (e Encoded) Amount() uint64 { return uint40(e[1:6]) }

// Salt returns the ten salt bytes, flags included.
func (e Encoded) Salt() [10]byte {
	var s [10]byte
	copy(s[:], e[6:16])
	return s
}

// SaltData returns the nine salt bytes following the flags.
func (e Encoded) SaltData() [9]byte {
	var s [9]byte
	copy(s[:], e[7:16])
	return s
}

// Flags decodes the options of the first salt byte.
func (e Encoded) Flags() Flags { return decodeFlags(e[6]) }

// FeeForLP is the fee kept by the liquidity provider.
func (e Encoded) FeeForLP() uint64 { return uint40(e[16:21]) }

// ExpireTs is the unix time after which the swap can be cancelled.
func (e Encoded) ExpireTs() uint64 { return uint40(e[21:26]) }

// OutChain is the chain the swap is paid out on.
func (e Encoded) OutChain() ChainCode { return ChainCode{e[26], e[27]} }

// OutCoinIndex is the whitelist index of the coin paid out.
func (e Encoded) OutCoinIndex() uint8 { return e[28] }

// InChain is the chain the swap is funded on.
func (e Encoded) InChain() ChainCode { return ChainCode{e[29], e[30]} }

// InCoinIndex is the whitelist index of the coin deposited.
func (e Encoded) InCoinIndex() uint8 { return e[31] }

// ServiceFee returns the protocol fee for the given rate, expressed in
// units of 1/10000 of the amount.
func (e Encoded) ServiceFee(rate uint64) uint64 {
	return e.Amount() * rate / 10000
}

// CheckVersion fails unless the swap was encoded for this protocol.
func (e Encoded) CheckVersion() error {
	if e.Version() != xswap.ProtocolVersion {
		return errors.Wrapf(errors.ErrInvalidEncodedVersion, "version %d", e.Version())
	}
	return nil
}

// Hex returns the lower case hex form without prefix.
func (e Encoded) Hex() string {
	return hex.EncodeToString(e[:])
}

func (e Encoded) String() string {
	return e.Hex()
}

// MarshalText encodes the descriptor as hex.
func (e Encoded) MarshalText() ([]byte, error) {
	return []byte(e.Hex()), nil
}

// UnmarshalText decodes a hex descriptor.
func (e *Encoded) UnmarshalText(text []byte) error {
	parsed, err := ParseEncodedHex(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
