package weavetest

import "encoding/binary"

// SequenceID returns the big-endian encoding of n, the key form used for
// pool indexes.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
