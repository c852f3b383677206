package crypto

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

// AddressLength is the size of a signer address.
const AddressLength = common.AddressLength

// Address identifies the signer of a request or a release.
type Address = common.Address

// ZeroAddress is returned when no signer could be recovered.
var ZeroAddress Address

// PublicKeyLength is the size of an uncompressed public key without the
// 0x04 prefix.
const PublicKeyLength = 64

// AddressFromPublicKey computes the address of an uncompressed public key.
// The 0x04 prefix is optional.
func AddressFromPublicKey(pub []byte) (Address, error) {
	if len(pub) == PublicKeyLength+1 && pub[0] == 0x04 {
		pub = pub[1:]
	}
	if len(pub) != PublicKeyLength {
		return ZeroAddress, errors.Wrapf(errors.ErrInput, "public key must be %d bytes, got %d", PublicKeyLength, len(pub))
	}
	return common.BytesToAddress(Keccak256(pub)[12:]), nil
}

// AddressOfHolder returns the 20 byte form of a 32 byte identity: its
// leading 20 bytes.
func AddressOfHolder(h xswap.Holder) Address {
	return common.BytesToAddress(h[:AddressLength])
}

// ParseAddress accepts a hex encoded address with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return ZeroAddress, errors.Wrapf(errors.ErrInput, "address: %s", err)
	}
	if len(raw) != AddressLength {
		return ZeroAddress, errors.Wrapf(errors.ErrInput, "address must be %d bytes, got %d", AddressLength, len(raw))
	}
	return common.BytesToAddress(raw), nil
}
