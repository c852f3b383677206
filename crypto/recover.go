package crypto

import (
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the size of a compact signature.
const SignatureLength = 64

// RecoverAddress returns the address that produced the compact signature of
// the digest, or ZeroAddress if it cannot be recovered.
func RecoverAddress(digest, sig []byte) Address {
	if len(digest) != HashLength || len(sig) != SignatureLength {
		return ZeroAddress
	}
	// r || s || v with the parity moved out of s
	full := make([]byte, SignatureLength+1)
	copy(full, sig)
	full[SignatureLength] = full[32] >> 7
	full[32] &= 0x7f

	pub, err := ethcrypto.SigToPub(digest, full)
	if err != nil {
		return ZeroAddress
	}
	return ethcrypto.PubkeyToAddress(*pub)
}
