/*
Package cryptotest provides secp256k1 signers producing compact signatures
for tests.
*/
package cryptotest

import (
	"crypto/ecdsa"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/iov-one/xswap/crypto"
)

// Key is a secp256k1 private key.
type Key struct {
	priv *ecdsa.PrivateKey
}

// NewKey generates a random key.
func NewKey(t testing.TB) *Key {
	t.Helper()
	priv, err := ethcrypto.GenerateKey()
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	return &Key{priv: priv}
}

// Address returns the signer address of the key.
func (k *Key) Address() crypto.Address {
	return ethcrypto.PubkeyToAddress(k.priv.PublicKey)
}

// PublicKey returns the uncompressed public key without the 0x04 prefix.
func (k *Key) PublicKey() []byte {
	return ethcrypto.FromECDSAPub(&k.priv.PublicKey)[1:]
}

// Sign returns the 64 byte compact signature of the digest.
func (k *Key) Sign(t testing.TB, digest []byte) []byte {
	t.Helper()
	sig, err := ethcrypto.Sign(digest, k.priv)
	if err != nil {
		t.Fatalf("cannot sign: %s", err)
	}
	out := sig[:crypto.SignatureLength]
	out[32] |= sig[crypto.SignatureLength] << 7
	return out
}
