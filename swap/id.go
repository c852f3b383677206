package swap

import (
	"encoding/hex"

	"github.com/iov-one/xswap/crypto"
)

// ID identifies a locked swap on the out-chain side: the keccak256 hash of
// the encoded swap followed by the initiator address.
type ID [crypto.HashLength]byte

// SwapID computes the id of the swap requested by the initiator.
func SwapID(e Encoded, initiator crypto.Address) ID {
	return ID(crypto.Keccak256Hash(e[:], initiator[:]))
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}
