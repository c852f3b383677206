package xswap

import (
	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/xswap/errors"
)

// HolderLength is the size of an account identity of the in-chain.
const HolderLength = solana.PublicKeyLength

// Holder is a 32 byte account identity: a pool owner, a swap initiator
// account, the custody account or a token mint.
type Holder = solana.PublicKey

// Token identifies an asset on the in-chain ledger.
type Token = solana.PublicKey

// ZeroHolder is the empty identity. Records carrying it are treated as
// absent.
var ZeroHolder Holder

// IsZeroHolder returns true if the identity is empty.
func IsZeroHolder(h Holder) bool {
	return h == ZeroHolder
}

// HolderFromBytes reads an identity from its raw form.
func HolderFromBytes(raw []byte) (Holder, error) {
	if len(raw) != HolderLength {
		return ZeroHolder, errors.Wrapf(errors.ErrInput, "holder must be %d bytes, got %d", HolderLength, len(raw))
	}
	return solana.PublicKeyFromBytes(raw), nil
}

// ParseHolder accepts the base58 representation of an identity.
func ParseHolder(s string) (Holder, error) {
	h, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return ZeroHolder, errors.Wrap(errors.ErrInput, err.Error())
	}
	return h, nil
}
