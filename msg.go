package xswap

import (
	"fmt"
	"reflect"

	"github.com/iov-one/xswap/errors"
)

// Opcode is the first byte of every instruction. It selects the handler
// and the layout of the payload that follows it.
type Opcode uint8

const (
	OpInit Opcode = iota
	OpTransferAdmin
	OpAddSupportToken
	OpRegisterPool
	OpPostSwap
	OpBondSwap
	OpCancelSwap
	OpExecuteSwap
	OpDeposit
	OpWithdraw
	OpLock
	OpUnlock
	OpRelease
	OpAddAuthorized
	OpTransferPremiumManager
)

var opcodeNames = map[Opcode]string{
	OpInit:                   "init",
	OpTransferAdmin:          "transfer_admin",
	OpAddSupportToken:        "add_support_token",
	OpRegisterPool:           "register_pool",
	OpPostSwap:               "post_swap",
	OpBondSwap:               "bond_swap",
	OpCancelSwap:             "cancel_swap",
	OpExecuteSwap:            "execute_swap",
	OpDeposit:                "deposit",
	OpWithdraw:               "withdraw",
	OpLock:                   "lock",
	OpUnlock:                 "unlock",
	OpRelease:                "release",
	OpAddAuthorized:          "add_authorized",
	OpTransferPremiumManager: "transfer_premium_manager",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("opcode(%d)", uint8(o))
}

// Marshaller is anything that can be represented in binary
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is an instruction payload decoded into its typed form. Payloads have
// fixed lengths; Unmarshal rejects anything else.
type Msg interface {
	Persistent

	// Opcode returns the instruction the message is routed with.
	Opcode() Opcode

	// Validate performs the stateless checks of the message content.
	Validate() error
}

// Tx is a single decoded instruction handed to the handlers.
type Tx interface {
	GetMsg() (Msg, error)
}

// LoadMsg extracts the message from the tx into the destination, which
// must be a pointer to the concrete message type. The message is validated.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	src := reflect.ValueOf(msg)
	if src.Type() == dest.Type() {
		dest.Elem().Set(src.Elem())
		return nil
	}
	if src.Type() == dest.Elem().Type() {
		dest.Elem().Set(src)
		return nil
	}
	return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
}

// CheckPayload fails with ErrInvalidInstruction unless the payload of the
// instruction has exactly n bytes.
func CheckPayload(op Opcode, raw []byte, n int) error {
	if len(raw) != n {
		return errors.Wrapf(errors.ErrInvalidInstruction, "%s payload must be %d bytes, got %d", op, n, len(raw))
	}
	return nil
}
