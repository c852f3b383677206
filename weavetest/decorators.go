package weavetest

import (
	"context"

	"github.com/iov-one/xswap"
)

// Decorator is a mock implementation of the xswap.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ xswap.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx, next xswap.Checker) (*xswap.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &xswap.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx, next xswap.Deliverer) (*xswap.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &xswap.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate returns the handler wrapped with a single decorator.
func Decorate(h xswap.Handler, d xswap.Decorator) xswap.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn xswap.Handler
	dc xswap.Decorator
}

var _ xswap.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
