package app

import (
	"context"
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/iov-one/xswap/weavetest"
	"github.com/iov-one/xswap/weavetest/assert"
	"github.com/iov-one/xswap/x/utils"
)

func TestChain(t *testing.T) {
	c1 := &weavetest.Decorator{}
	c2 := &weavetest.Decorator{}
	c3 := &weavetest.Decorator{}
	h := &weavetest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		nil,
		c3,
	).WithHandler(h)

	ctx := context.Background()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{Op: xswap.OpDeposit}}

	_, err := stack.Check(ctx, nil, tx)
	assert.Nil(t, err)
	_, err = stack.Deliver(ctx, nil, tx)
	assert.Nil(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// A failing decorator stops the chain before the handler.
	c2.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(ctx, nil, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 3, c1.CallCount())
	assert.Equal(t, 3, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainRecoversPanic(t *testing.T) {
	c1 := &weavetest.Decorator{}
	stack := ChainDecorators(
		utils.NewRecovery(),
		c1,
	).WithHandler(weavetest.PanicHandler{Value: "boom"})

	tx := &weavetest.Tx{Msg: &weavetest.Msg{Op: xswap.OpDeposit}}
	_, err := stack.Check(context.Background(), nil, tx)
	assert.IsErr(t, errors.ErrPanic, err)
	_, err = stack.Deliver(context.Background(), nil, tx)
	assert.IsErr(t, errors.ErrPanic, err)
	assert.Equal(t, 2, c1.CallCount())
}

func TestChainAppend(t *testing.T) {
	c1 := &weavetest.Decorator{}
	c2 := &weavetest.Decorator{}
	base := ChainDecorators(c1)
	extended := base.Chain(c2)

	h := &weavetest.Handler{}
	tx := &weavetest.Tx{Msg: &weavetest.Msg{Op: xswap.OpDeposit}}

	_, err := base.WithHandler(h).Check(context.Background(), nil, tx)
	assert.Nil(t, err)
	assert.Equal(t, 0, c2.CallCount())

	_, err = extended.WithHandler(h).Check(context.Background(), nil, tx)
	assert.Nil(t, err)
	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 1, c2.CallCount())
}

func TestCutoffNil(t *testing.T) {
	var nilDecorator *weavetest.Decorator
	d := &weavetest.Decorator{}
	got := cutoffNil([]xswap.Decorator{nil, d, nilDecorator, nil, d})
	assert.Equal(t, 2, len(got))
}
