package app

import (
	"context"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

// Router dispatches instructions to the handler registered for their
// opcode. It also knows how to decode the payload of every registered
// opcode.
type Router struct {
	routes map[xswap.Opcode]route
}

type route struct {
	decode  xswap.MsgDecoder
	handler xswap.Handler
}

var _ xswap.Registry = (*Router)(nil)
var _ xswap.Handler = (*Router)(nil)

// NewRouter returns a router without any routes.
func NewRouter() *Router {
	return &Router{routes: make(map[xswap.Opcode]route)}
}

// Handle registers the decoder and handler of an opcode. It panics if the
// opcode is already registered.
func (r *Router) Handle(op xswap.Opcode, decode xswap.MsgDecoder, h xswap.Handler) {
	if _, ok := r.routes[op]; ok {
		panic(errors.Wrapf(errors.ErrDuplicate, "route %s", op))
	}
	if decode == nil || h == nil {
		panic(errors.Wrapf(errors.ErrHuman, "route %s: decoder and handler are required", op))
	}
	r.routes[op] = route{decode: decode, handler: h}
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	return len(r.routes)
}

// Decode parses a raw instruction: the opcode byte followed by its
// payload. Unknown opcodes and payloads of a wrong length fail with
// ErrInvalidInstruction.
func (r *Router) Decode(raw []byte) (xswap.Tx, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInstruction, "empty instruction")
	}
	op := xswap.Opcode(raw[0])
	rt, ok := r.routes[op]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInstruction, "unknown %s", op)
	}
	msg := rt.decode()
	if err := msg.Unmarshal(raw[1:]); err != nil {
		return nil, err
	}
	return &Instruction{Raw: raw, Msg: msg}, nil
}

// Check dispatches to the handler of the message opcode.
func (r *Router) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

// Deliver dispatches to the handler of the message opcode.
func (r *Router) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx) (*xswap.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r *Router) handler(tx xswap.Tx) (xswap.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	rt, ok := r.routes[msg.Opcode()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInstruction, "no route for %s", msg.Opcode())
	}
	return rt.handler, nil
}

// Instruction is a decoded raw instruction.
type Instruction struct {
	Raw []byte
	Msg xswap.Msg
}

var _ xswap.Tx = (*Instruction)(nil)

func (i *Instruction) GetMsg() (xswap.Msg, error) {
	return i.Msg, nil
}

// EncodeInstruction serializes the message into its raw form.
func EncodeInstruction(msg xswap.Msg) ([]byte, error) {
	payload, err := msg.Marshal()
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(msg.Opcode())}, payload...), nil
}
