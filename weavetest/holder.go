package weavetest

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/xswap"
)

// NewHolder returns the public key of a freshly generated in-chain wallet.
func NewHolder() xswap.Holder {
	return solana.NewWallet().PublicKey()
}

// RandomHolder returns a random identity that does not have to be a valid
// curve point, as used for token mints and custody accounts.
func RandomHolder(t testing.TB) xswap.Holder {
	t.Helper()
	var h xswap.Holder
	if _, err := rand.Read(h[:]); err != nil {
		t.Fatalf("cannot generate a random holder: %s", err)
	}
	return h
}

// DecodeHolder takes a hex encoded identity and returns its holder form.
func DecodeHolder(t testing.TB, encoded string) xswap.Holder {
	t.Helper()
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot decode hex string: %s", err)
	}
	h, err := xswap.HolderFromBytes(raw)
	if err != nil {
		t.Fatalf("decoded string is not a valid holder: %s", err)
	}
	return h
}
