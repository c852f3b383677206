package errors

import "fmt"

// Kind groups error codes by the reason an operation was rejected.
type Kind uint8

const (
	Internal Kind = iota
	Decoding
	Authentication
	Temporal
	StateConflict
	Balance
	Authorization
	Input
)

func (k Kind) String() string {
	switch k {
	case Decoding:
		return "decoding"
	case Authentication:
		return "authentication"
	case Temporal:
		return "temporal"
	case StateConflict:
		return "state_conflict"
	case Balance:
		return "balance"
	case Authorization:
		return "authorization"
	case Input:
		return "input"
	default:
		return "internal"
	}
}

func kindOfCode(code uint32) Kind {
	switch {
	case code >= 20 && code < 30:
		return Decoding
	case code >= 30 && code < 40:
		return Authentication
	case code >= 40 && code < 50:
		return Temporal
	case code >= 50 && code < 60:
		return StateConflict
	case code >= 60 && code < 70:
		return Balance
	case code >= 70 && code < 80:
		return Authorization
	case code >= 80 && code < 90:
		return Input
	default:
		return Internal
	}
}

const (
	// SuccessCode is reported for a nil error.
	SuccessCode uint32 = 0

	// All unclassified errors that do not provide a code are clubbed under
	// an internal error code and a generic message instead of detailed
	// error string.
	internalCode uint32 = 1
	internalLog         = "internal error"
)

type coder interface {
	Code() uint32
}

// Code returns the registered code of the root error wrapped by err, 1 if
// the error is not registered, 0 for nil.
func Code(err error) uint32 {
	if err == nil {
		return SuccessCode
	}
	for {
		if c, ok := err.(coder); ok {
			return c.Code()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalCode
		}
	}
}

// KindOf returns the category of the failure.
func KindOf(err error) Kind {
	return kindOfCode(Code(err))
}

// Info returns the code and the message that may be shown to a caller.
// Messages of unregistered and panic errors are hidden unless debug is set.
func Info(err error, debug bool) (uint32, string) {
	if err == nil {
		return SuccessCode, ""
	}
	code := Code(err)
	if debug {
		return code, fmt.Sprintf("%+v", err)
	}
	if code == internalCode {
		return internalCode, internalLog
	}
	if ErrPanic.Is(err) {
		return code, ErrPanic.desc
	}
	return code, err.Error()
}
