package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/xswap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced holders. You can use
// either Signer or Signers (or both) attributes; each time all signers are
// considered, Signers first.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer xswap.Holder

	// Signers represents an authentication of multiple signers.
	Signers []xswap.Holder
}

func (a *Auth) GetSigners(context.Context) []xswap.Holder {
	if !xswap.IsZeroHolder(a.Signer) {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasSigner(ctx context.Context, h xswap.Holder) bool {
	for _, s := range a.GetSigners(ctx) {
		if s == h {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve signers.
type CtxAuth struct {
	// Key used to set and retrieve signers from the context. For
	// convinience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetSigners(ctx context.Context, signers ...xswap.Holder) context.Context {
	return context.WithValue(ctx, a.Key, signers)
}

func (a *CtxAuth) GetSigners(ctx context.Context) []xswap.Holder {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	signers, ok := val.([]xswap.Holder)
	if !ok {
		panic(fmt.Sprintf("instead of []xswap.Holder got %T", val))
	}
	return signers
}

func (a *CtxAuth) HasSigner(ctx context.Context, h xswap.Holder) bool {
	for _, s := range a.GetSigners(ctx) {
		if s == h {
			return true
		}
	}
	return false
}
