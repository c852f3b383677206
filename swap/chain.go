package swap

import (
	"encoding/hex"
	"fmt"

	"github.com/iov-one/xswap/errors"
)

// ChainCode is the short (two byte) SLIP-44 coin type of a chain.
type ChainCode [2]byte

var (
	// ChainSolana is the chain the swap core is deployed on by default.
	ChainSolana = ChainCode{0x01, 0xf5}
	// ChainTron signs with its own message headers.
	ChainTron = ChainCode{0x00, 0xc3}
	// ChainEthereum is the short coin type of Ethereum.
	ChainEthereum = ChainCode{0x00, 0x3c}
)

func (c ChainCode) String() string {
	return hex.EncodeToString(c[:])
}

// MarshalText encodes the code as four hex digits.
func (c ChainCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes four hex digits.
func (c *ChainCode) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrap(errors.ErrInput, fmt.Sprintf("chain code: %s", err))
	}
	if len(raw) != len(c) {
		return errors.Wrapf(errors.ErrInput, "chain code must be %d bytes", len(c))
	}
	copy(c[:], raw)
	return nil
}
