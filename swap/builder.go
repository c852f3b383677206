package swap

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

// Fields are the decoded content of an encoded swap.
type Fields struct {
	Version      uint8
	Amount       uint64
	Flags        Flags
	SaltData     [9]byte
	FeeForLP     uint64
	ExpireTs     uint64
	OutChain     ChainCode
	OutCoinIndex uint8
	InChain      ChainCode
	InCoinIndex  uint8
}

// Decode returns all fields of the descriptor.
func (e Encoded) Decode() Fields {
	return Fields{
		Version:      e.Version(),
		Amount:       e.Amount(),
		Flags:        e.Flags(),
		SaltData:     e.SaltData(),
		FeeForLP:     e.FeeForLP(),
		ExpireTs:     e.ExpireTs(),
		OutChain:     e.OutChain(),
		OutCoinIndex: e.OutCoinIndex(),
		InChain:      e.InChain(),
		InCoinIndex:  e.InCoinIndex(),
	}
}

// Encode packs the fields. 40 bit fields that do not fit fail with
// ErrOverflow, checked in the order amount, fee, expire ts.
//
// A zero Version is encoded as the current ProtocolVersion, so
// Encode(f).Decode() equals f except that a zero Version comes back as
// ProtocolVersion. Any other version is kept as given.
func Encode(f Fields) (Encoded, error) {
	var e Encoded
	for _, field := range []struct {
		name string
		v    uint64
	}{
		{"amount", f.Amount},
		{"fee", f.FeeForLP},
		{"expire ts", f.ExpireTs},
	} {
		if field.v > MaxUint40 {
			return e, errors.Wrapf(errors.ErrOverflow, "%s %d does not fit 40 bits", field.name, field.v)
		}
	}
	e[0] = f.Version
	if e[0] == 0 {
		e[0] = xswap.ProtocolVersion
	}
	putUint40(e[1:6], f.Amount)
	e[6] = f.Flags.encode()
	copy(e[7:16], f.SaltData[:])
	putUint40(e[16:21], f.FeeForLP)
	putUint40(e[21:26], f.ExpireTs)
	copy(e[26:28], f.OutChain[:])
	e[28] = f.OutCoinIndex
	copy(e[29:31], f.InChain[:])
	e[31] = f.InCoinIndex
	return e, nil
}

// MustEncode is like Encode, but panics instead of returning errors.
// Only use when you control the fields being passed in.
func MustEncode(f Fields) Encoded {
	e, err := Encode(f)
	if err != nil {
		panic(err)
	}
	return e
}
