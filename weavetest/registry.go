package weavetest

import "github.com/iov-one/xswap"

// Registry records the routes registered by an extension so tests can
// call the handlers directly.
type Registry struct {
	Decoders map[xswap.Opcode]xswap.MsgDecoder
	Handlers map[xswap.Opcode]xswap.Handler
}

var _ xswap.Registry = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		Decoders: make(map[xswap.Opcode]xswap.MsgDecoder),
		Handlers: make(map[xswap.Opcode]xswap.Handler),
	}
}

func (r *Registry) Handle(op xswap.Opcode, decode xswap.MsgDecoder, h xswap.Handler) {
	r.Decoders[op] = decode
	r.Handlers[op] = h
}
