package weavetest

import (
	"context"

	"github.com/iov-one/xswap"
)

// Handler is a mock implementation of the xswap.Handler interface. It
// counts the calls and returns the configured results.
type Handler struct {
	checkCall   int
	CheckResult xswap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult xswap.DeliverResult
	DeliverErr    error
}

var _ xswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	h.checkCall++
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	h.deliverCall++
	res := h.DeliverResult
	return &res, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes the key value pair on every call and then returns
// Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ xswap.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &xswap.CheckResult{}, h.Err
}

func (h WriteHandler) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &xswap.DeliverResult{}, h.Err
}

// PanicHandler panics with the given value on every call.
type PanicHandler struct {
	Value interface{}
}

var _ xswap.Handler = PanicHandler{}

func (h PanicHandler) Check(context.Context, xswap.KVStore, xswap.Tx) (*xswap.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(context.Context, xswap.KVStore, xswap.Tx) (*xswap.DeliverResult, error) {
	panic(h.Value)
}
