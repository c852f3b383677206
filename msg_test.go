package xswap_test

import (
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/weavetest"
	"github.com/iov-one/xswap/weavetest/assert"
)

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      xswap.Tx
		dest    interface{}
		wantErr *errors.Error
		wantOp  xswap.Opcode
	}{
		"pointer destination": {
			tx:     &weavetest.Tx{Msg: &weavetest.Msg{Op: xswap.OpLock}},
			dest:   &weavetest.Msg{},
			wantOp: xswap.OpLock,
		},
		"pointer to pointer destination": {
			tx: &weavetest.Tx{Msg: &weavetest.Msg{Op: xswap.OpUnlock}},
			dest: func() interface{} {
				var m *weavetest.Msg
				return &m
			}(),
			wantOp: xswap.OpUnlock,
		},
		"invalid message": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{Err: errors.ErrInvalidEncodedVersion}},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrInvalidEncodedVersion,
		},
		"broken transaction": {
			tx:      &weavetest.Tx{Err: errors.ErrModel},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrModel,
		},
		"non pointer destination": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{}},
			dest:    weavetest.Msg{},
			wantErr: errors.ErrType,
		},
		"destination of a different type": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{}},
			dest:    new(string),
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := xswap.LoadMsg(tc.tx, tc.dest)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			var got xswap.Opcode
			switch d := tc.dest.(type) {
			case *weavetest.Msg:
				got = d.Op
			case **weavetest.Msg:
				got = (*d).Op
			}
			assert.Equal(t, tc.wantOp, got)
		})
	}
}

func TestCheckPayload(t *testing.T) {
	assert.Nil(t, xswap.CheckPayload(xswap.OpCancelSwap, make([]byte, 32), 32))
	err := xswap.CheckPayload(xswap.OpCancelSwap, make([]byte, 31), 32)
	assert.IsErr(t, errors.ErrInvalidInstruction, err)
	err = xswap.CheckPayload(xswap.OpInit, []byte{0}, 0)
	assert.IsErr(t, errors.ErrInvalidInstruction, err)
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "post_swap", xswap.OpPostSwap.String())
	assert.Equal(t, "transfer_premium_manager", xswap.OpTransferPremiumManager.String())
	assert.Equal(t, "opcode(15)", xswap.Opcode(15).String())
}
