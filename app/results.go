package app

import (
	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

// Result is the outcome of processing one raw instruction. A zero Code
// means success.
type Result struct {
	Code uint32 `json:"code"`
	Kind string `json:"kind,omitempty"`
	Log  string `json:"log,omitempty"`
	Data []byte `json:"data,omitempty"`
}

// IsOK returns true if the instruction succeeded.
func (r Result) IsOK() bool {
	return r.Code == 0
}

// CheckResult builds the result of a check call. Unless debug is set, the
// log of an internal error is redacted.
func CheckResult(res *xswap.CheckResult, err error, debug bool) Result {
	if err != nil {
		return errorResult(err, debug)
	}
	if res == nil {
		return Result{}
	}
	return Result{Log: res.Log}
}

// DeliverResult builds the result of a deliver call.
func DeliverResult(res *xswap.DeliverResult, err error, debug bool) Result {
	if err != nil {
		return errorResult(err, debug)
	}
	if res == nil {
		return Result{}
	}
	return Result{Log: res.Log, Data: res.Data}
}

func errorResult(err error, debug bool) Result {
	code, log := errors.Info(err, debug)
	return Result{
		Code: code,
		Kind: errors.KindOf(err).String(),
		Log:  log,
	}
}
