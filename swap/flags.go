package swap

const (
	flagNotToContract = 0x80
	flagFeeWaived     = 0x40
	flagNonTyped      = 0x08
)

// Flags are the options carried by the first salt byte.
type Flags struct {
	// WillTransferToContract is set when the release is made to a contract
	// rather than to the recipient directly. It is encoded inverted: the bit
	// is clear when the transfer goes to a contract.
	WillTransferToContract bool
	// FeeWaived releases without the service fee. Only the premium manager
	// can release such swaps.
	FeeWaived bool
	// NonTypedSigning selects the plain signed message headers instead of
	// typed data hashing.
	NonTypedSigning bool
	// SaltRemainder are the remaining bits of the first salt byte.
	SaltRemainder byte
}

func decodeFlags(b byte) Flags {
	return Flags{
		WillTransferToContract: b&flagNotToContract == 0,
		FeeWaived:              b&flagFeeWaived != 0,
		NonTypedSigning:        b&flagNonTyped != 0,
		SaltRemainder:          b &^ (flagNotToContract | flagFeeWaived | flagNonTyped),
	}
}

func (f Flags) encode() byte {
	b := f.SaltRemainder &^ (flagNotToContract | flagFeeWaived | flagNonTyped)
	if !f.WillTransferToContract {
		b |= flagNotToContract
	}
	if f.FeeWaived {
		b |= flagFeeWaived
	}
	if f.NonTypedSigning {
		b |= flagNonTyped
	}
	return b
}
