package pool

import (
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/weavetest"
	"github.com/iov-one/xswap/weavetest/assert"
)

func TestMsgRoundTrip(t *testing.T) {
	identity := weavetest.NewHolder()
	cases := map[string]struct {
		msg   xswap.Msg
		empty xswap.Msg
		size  int
	}{
		"register pool": {
			msg:   &RegisterPoolMsg{Pool: 42},
			empty: &RegisterPoolMsg{},
			size:  8,
		},
		"deposit": {
			msg:   &DepositMsg{Funds{Pool: 42, CoinIndex: 3, Amount: 1 << 40}},
			empty: &DepositMsg{},
			size:  17,
		},
		"withdraw": {
			msg:   &WithdrawMsg{Funds{Pool: 42, CoinIndex: 3, Amount: 5}},
			empty: &WithdrawMsg{},
			size:  17,
		},
		"add authorized": {
			msg:   &AddAuthorizedMsg{Pool: 42, Identity: identity},
			empty: &AddAuthorizedMsg{},
			size:  40,
		},
		"transfer premium manager": {
			msg:   &TransferPremiumManagerMsg{NewManager: identity},
			empty: &TransferPremiumManagerMsg{},
			size:  32,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := tc.msg.Marshal()
			assert.Nil(t, err)
			assert.Equal(t, tc.size, len(raw))

			assert.Nil(t, tc.empty.Unmarshal(raw))
			assert.Equal(t, tc.msg, tc.empty)

			err = tc.empty.Unmarshal(append(raw, 0))
			assert.IsErr(t, errors.ErrInvalidInstruction, err)
		})
	}
}

func TestFundsLayout(t *testing.T) {
	raw, err := DepositMsg{Funds{Pool: 1, CoinIndex: 2, Amount: 3}}.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1, 2, 0, 0, 0, 0, 0, 0, 0, 3}, raw)
}
