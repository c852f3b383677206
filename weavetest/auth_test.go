package weavetest

import (
	"context"
	"reflect"
	"testing"

	"github.com/iov-one/xswap"
)

func TestAuthNoSigners(t *testing.T) {
	var a Auth

	if got := a.GetSigners(nil); got != nil {
		t.Fatalf("unexpected signers: %+v", got)
	}

	if a.HasSigner(nil, NewHolder()) {
		t.Fatal("random holder must not be present")
	}
}

func TestAuthUsingSignerAndSigners(t *testing.T) {
	holders := []xswap.Holder{
		NewHolder(),
		NewHolder(),
		NewHolder(),
	}

	a := Auth{
		Signer:  holders[2],
		Signers: holders[:2],
	}

	if got := a.GetSigners(nil); !reflect.DeepEqual(got, holders) {
		for i, h := range got {
			t.Logf("signer %d: %s", i, h)
		}
		t.Fatalf("unexpected signers")
	}

	for i, h := range holders {
		if !a.HasSigner(nil, h) {
			t.Errorf("signer %d (%s) should be present", i, h)
		}
	}

	if a.HasSigner(nil, NewHolder()) {
		t.Fatal("random holder must not be present")
	}
}

func TestCtxAuth(t *testing.T) {
	signers := []xswap.Holder{
		NewHolder(),
		NewHolder(),
	}
	ctx := context.Background()

	a := CtxAuth{Key: "auth"}
	ctx = a.SetSigners(ctx, signers...)

	if got := a.GetSigners(ctx); !reflect.DeepEqual(got, signers) {
		for i, h := range got {
			t.Logf("signer %d: %s", i, h)
		}
		t.Fatal("unexpected signers")
	}

	for i, h := range signers {
		if !a.HasSigner(ctx, h) {
			t.Errorf("signer %d (%s) should be present", i, h)
		}
	}

	if a.HasSigner(ctx, NewHolder()) {
		t.Fatal("random holder must not be present")
	}
}

func TestCtxAuthEmptyContext(t *testing.T) {
	ctx := context.Background()
	a := CtxAuth{Key: "auth"}
	if got := a.GetSigners(ctx); got != nil {
		t.Fatalf("want nil, got %+v", got)
	}
	if a.HasSigner(ctx, NewHolder()) {
		t.Fatal("random holder must not be present")
	}
}
