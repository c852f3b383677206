package admin

import (
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/weavetest"
	"github.com/iov-one/xswap/weavetest/assert"
)

func TestMsgPayloadLength(t *testing.T) {
	cases := map[string]struct {
		msg     xswap.Msg
		raw     []byte
		wantErr *errors.Error
	}{
		"init":                       {msg: &InitMsg{}, raw: nil},
		"init with payload":          {msg: &InitMsg{}, raw: []byte{1}, wantErr: errors.ErrInvalidInstruction},
		"transfer admin":             {msg: &TransferAdminMsg{}, raw: make([]byte, 32)},
		"transfer admin short":       {msg: &TransferAdminMsg{}, raw: make([]byte, 31), wantErr: errors.ErrInvalidInstruction},
		"add support token":          {msg: &AddSupportTokenMsg{}, raw: make([]byte, 33)},
		"add support token too long": {msg: &AddSupportTokenMsg{}, raw: make([]byte, 34), wantErr: errors.ErrInvalidInstruction},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Unmarshal(tc.raw)
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestAddSupportTokenMsgLayout(t *testing.T) {
	token := weavetest.RandomHolder(t)
	raw, err := AddSupportTokenMsg{CoinIndex: 9, Token: token}.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, byte(9), raw[0])

	var got AddSupportTokenMsg
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, AddSupportTokenMsg{CoinIndex: 9, Token: token}, got)
}
