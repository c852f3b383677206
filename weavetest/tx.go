package weavetest

import "github.com/iov-one/xswap"

// Tx represents a single decoded instruction.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg xswap.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ xswap.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (xswap.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents an instruction payload.
type Msg struct {
	// Op is returned by the Opcode method, consumed by the router.
	Op xswap.Opcode
	// Serialized represents the serialized form of this message.
	Serialized []byte
	// Err if set is returned by any method call.
	Err error
}

var _ xswap.Msg = (*Msg)(nil)

func (m *Msg) Opcode() xswap.Opcode {
	return m.Op
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Validate() error {
	return m.Err
}
