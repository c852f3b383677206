package swap

import (
	"github.com/iov-one/xswap/crypto"
	"github.com/iov-one/xswap/errors"
)

var (
	ethSignHeader    = []byte("\x19Ethereum Signed Message:\n32")
	ethSignHeader52  = []byte("\x19Ethereum Signed Message:\n52")
	tronSignHeader   = []byte("\x19TRON Signed Message:\n32\n")
	tronSignHeader33 = []byte("\x19TRON Signed Message:\n33\n")
	tronSignHeader53 = []byte("\x19TRON Signed Message:\n53\n")
)

const (
	requestType        = "bytes32 Sign to request a swap on Meson"
	requestTypeTestnet = "bytes32 Sign to request a swap on Meson (Testnet)"
	releaseType        = "bytes32 Sign to release a swap on Mesonaddress Recipient"
	releaseTypeTestnet = "bytes32 Sign to release a swap on Meson (Testnet)address Recipient"
	releaseTypeTron    = "bytes32 Sign to release a swap on Mesonaddress Recipient (tron address in hex format)"
)

// Scheme builds the messages that request and release signatures are made
// over. The typed data strings differ between testnet and mainnet.
type Scheme struct {
	Testnet bool
}

// RequestPayload returns the bytes hashed into the request digest.
func (s Scheme) RequestPayload(e Encoded) []byte {
	switch {
	case e.InChain() == ChainTron:
		header := tronSignHeader
		if e.Flags().NonTypedSigning {
			header = tronSignHeader33
		}
		return concat(header, e[:])
	case e.Flags().NonTypedSigning:
		return concat(ethSignHeader, e[:])
	default:
		typ := requestType
		if s.Testnet {
			typ = requestTypeTestnet
		}
		return concat(crypto.Keccak256([]byte(typ)), crypto.Keccak256(e[:]))
	}
}

// ReleasePayload returns the bytes hashed into the release digest.
func (s Scheme) ReleasePayload(e Encoded, recipient crypto.Address) []byte {
	switch {
	case e.InChain() == ChainTron:
		header := tronSignHeader
		if e.Flags().NonTypedSigning {
			header = tronSignHeader53
		}
		return concat(header, e[:], recipient[:])
	case e.Flags().NonTypedSigning:
		return concat(ethSignHeader52, e[:], recipient[:])
	default:
		typ := releaseType
		switch {
		case e.OutChain() == ChainTron:
			typ = releaseTypeTron
		case s.Testnet:
			typ = releaseTypeTestnet
		}
		return concat(crypto.Keccak256([]byte(typ)), crypto.Keccak256(e[:], recipient[:]))
	}
}

// RequestDigest is the hash signed by the initiator to request a swap.
func (s Scheme) RequestDigest(e Encoded) []byte {
	return crypto.Keccak256(s.RequestPayload(e))
}

// ReleaseDigest is the hash signed by the initiator to release a swap to
// the recipient.
func (s Scheme) ReleaseDigest(e Encoded, recipient crypto.Address) []byte {
	return crypto.Keccak256(s.ReleasePayload(e, recipient))
}

// CheckRequestSignature fails with ErrInvalidSignature unless the signer
// signed the request of the swap.
func (s Scheme) CheckRequestSignature(e Encoded, sig []byte, signer crypto.Address) error {
	return checkSigner(s.RequestDigest(e), sig, signer)
}

// CheckReleaseSignature fails with ErrInvalidSignature unless the signer
// signed the release of the swap to the recipient.
func (s Scheme) CheckReleaseSignature(e Encoded, recipient crypto.Address, sig []byte, signer crypto.Address) error {
	return checkSigner(s.ReleaseDigest(e, recipient), sig, signer)
}

func checkSigner(digest, sig []byte, signer crypto.Address) error {
	if signer == crypto.ZeroAddress {
		return errors.Wrap(errors.ErrInvalidSignature, "zero signer")
	}
	if got := crypto.RecoverAddress(digest, sig); got != signer {
		return errors.Wrapf(errors.ErrInvalidSignature, "recovered %s", got.Hex())
	}
	return nil
}

func concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
