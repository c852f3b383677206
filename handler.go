package xswap

import (
	"context"
	"encoding/json"
)

// Handler is a core engine that can process one instruction kind.
// This could represent "post a swap", or "deposit to a pool".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of an instruction
// without persisting anything.
type Checker interface {
	Check(ctx context.Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute an instruction.
type Deliverer interface {
	Deliver(ctx context.Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like logging or savepoints to many Handlers
type Decorator interface {
	Check(ctx context.Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx context.Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// CheckResult captures any non-error result of checking an instruction.
type CheckResult struct {
	// Log is human-readable informational string
	Log string
}

// DeliverResult captures any non-error result of executing an instruction.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a swap
	Data []byte
	// Log is human-readable informational string
	Log string
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(op Opcode, decode MsgDecoder, h Handler)
}

// MsgDecoder builds an empty message for an opcode that the payload is
// unmarshaled into.
type MsgDecoder func() Msg

// Options are the genesis options.
// Each extension can look up its key and parse the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
