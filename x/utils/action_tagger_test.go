package utils

import (
	"context"
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/store"
	"github.com/iov-one/xswap/weavetest"
	"github.com/iov-one/xswap/weavetest/assert"
)

// opcodeHandler records the opcode found in the context.
type opcodeHandler struct {
	weavetest.Handler
	got xswap.Opcode
}

func (h *opcodeHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	h.got, _ = xswap.GetOpcode(ctx)
	return h.Handler.Deliver(ctx, db, tx)
}

func TestActionTagger(t *testing.T) {
	cases := map[string]struct {
		tx      xswap.Tx
		wantErr *errors.Error
		wantOp  xswap.Opcode
	}{
		"tags the opcode": {
			tx:     &weavetest.Tx{Msg: &weavetest.Msg{Op: xswap.OpRelease}},
			wantOp: xswap.OpRelease,
		},
		"message cannot be read": {
			tx:      &weavetest.Tx{Err: errors.ErrInvalidInstruction},
			wantErr: errors.ErrInvalidInstruction,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			h := &opcodeHandler{}
			stack := weavetest.Decorate(h, NewActionTagger())

			_, err := stack.Deliver(context.Background(), store.MemStore(), tc.tx)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantOp, h.got)
		})
	}
}
