package crypto

import "golang.org/x/crypto/sha3"

// HashLength is the size of a keccak256 digest.
const HashLength = 32

// Keccak256 returns the legacy keccak256 digest of the concatenated data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// Keccak256Hash is Keccak256 returning a fixed size array.
func Keccak256Hash(data ...[]byte) (out [HashLength]byte) {
	copy(out[:], Keccak256(data...))
	return out
}
