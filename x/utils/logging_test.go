package utils

import (
	"bytes"
	"context"
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/store"
	"github.com/iov-one/xswap/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	cases := map[string]struct {
		handler  xswap.Handler
		check    bool
		contains []string
		missing  []string
	}{
		"delivered": {
			handler:  &weavetest.Handler{DeliverResult: xswap.DeliverResult{Log: "posted"}},
			contains: []string{"I[", "posted", "duration=", "action=cancel_swap"},
			missing:  []string{"err="},
		},
		"checked": {
			handler:  &weavetest.Handler{},
			check:    true,
			contains: []string{"D[", "duration="},
		},
		"failed": {
			handler:  &weavetest.Handler{DeliverErr: errors.ErrSwapNotExists},
			contains: []string{"E[", "err=", "swap not exists"},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := xswap.WithLogger(context.Background(), log.NewTMLogger(&buf))
			stack := weavetest.Decorate(weavetest.Decorate(tc.handler, NewLogging()), NewActionTagger())
			tx := &weavetest.Tx{Msg: &weavetest.Msg{Op: xswap.OpCancelSwap}}

			if tc.check {
				_, _ = stack.Check(ctx, store.MemStore(), tx)
			} else {
				_, _ = stack.Deliver(ctx, store.MemStore(), tx)
			}

			out := buf.String()
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.missing {
				assert.NotContains(t, out, s)
			}
		})
	}
}
