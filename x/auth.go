package x

import (
	"context"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system.
type Authenticator interface {
	// GetSigners reveals all holders that signed the instruction.
	GetSigners(context.Context) []xswap.Holder
	// HasSigner checks if the holder signed the instruction.
	HasSigner(context.Context, xswap.Holder) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetSigners combines the signers of all Authenticators
func (m MultiAuth) GetSigners(ctx context.Context) []xswap.Holder {
	var res []xswap.Holder
	for _, impl := range m.impls {
		add := impl.GetSigners(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasSigner returns true iff any Authenticator support this
func (m MultiAuth) HasSigner(ctx context.Context, h xswap.Holder) bool {
	for _, impl := range m.impls {
		if impl.HasSigner(ctx, h) {
			return true
		}
	}
	return false
}

// MainSigner returns the first signer if any, otherwise the zero holder.
func MainSigner(ctx context.Context, auth Authenticator) xswap.Holder {
	signers := auth.GetSigners(ctx)
	if len(signers) == 0 {
		return xswap.ZeroHolder
	}
	return signers[0]
}

// RequireSigner returns the main signer, or ErrUnauthorized when the
// instruction is not signed.
func RequireSigner(ctx context.Context, auth Authenticator) (xswap.Holder, error) {
	signer := MainSigner(ctx, auth)
	if xswap.IsZeroHolder(signer) {
		return signer, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return signer, nil
}

// HasAllSigners returns true if all elements in required are
// also in context.
func HasAllSigners(ctx context.Context, auth Authenticator, required []xswap.Holder) bool {
	for _, r := range required {
		if !auth.HasSigner(ctx, r) {
			return false
		}
	}
	return true
}

type contextKey int

const contextKeySigners contextKey = iota

// WithSigners records the holders whose signatures the host verified for
// the instruction being processed. It panics if signers were already set.
func WithSigners(ctx context.Context, signers ...xswap.Holder) context.Context {
	if ctx.Value(contextKeySigners) != nil {
		panic("signers already set")
	}
	return context.WithValue(ctx, contextKeySigners, signers)
}

// HostAuth authenticates the signers recorded with WithSigners.
type HostAuth struct{}

var _ Authenticator = HostAuth{}

func (HostAuth) GetSigners(ctx context.Context) []xswap.Holder {
	signers, _ := ctx.Value(contextKeySigners).([]xswap.Holder)
	return signers
}

func (a HostAuth) HasSigner(ctx context.Context, h xswap.Holder) bool {
	for _, s := range a.GetSigners(ctx) {
		if s == h {
			return true
		}
	}
	return false
}
