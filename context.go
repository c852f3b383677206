/*
We pass context through context.Context between the processor, decorators
and handlers. The processor records the operation time and the logger; each
extension, such as auth, may add its own keys to enrich the context.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set to avoid lower-level modules
overwriting the value.
*/
package xswap

import (
	"context"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

type contextKey int // local to the xswap module

const (
	contextKeyTime contextKey = iota
	contextKeyLogger
	contextKeyOpcode
)

// DefaultLogger is used for all context that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

// WithBlockTime sets the time of the operation that is being processed.
// Every timestamp comparison of a state machine is made against it.
func WithBlockTime(ctx context.Context, t time.Time) context.Context {
	if _, ok := BlockTime(ctx); ok {
		panic("block time already set")
	}
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the time set by WithBlockTime, if any.
func BlockTime(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(contextKeyTime).(time.Time)
	return t, ok
}

// UnixNow returns the operation time in unix seconds. It panics when the
// time was not set.
func UnixNow(ctx context.Context) uint64 {
	t, ok := BlockTime(ctx)
	if !ok {
		panic("block time not present in the context")
	}
	if t.Unix() < 0 {
		return 0
	}
	return uint64(t.Unix())
}

// WithOpcode records which instruction is being processed.
func WithOpcode(ctx context.Context, op Opcode) context.Context {
	return context.WithValue(ctx, contextKeyOpcode, op)
}

// GetOpcode returns the opcode stored in the context, if any.
func GetOpcode(ctx context.Context) (Opcode, bool) {
	op, ok := ctx.Value(contextKeyOpcode).(Opcode)
	return op, ok
}

// WithLogger sets the logger for this context.
func WithLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another context like this,
// after passing all the keyvals to the Logger
func WithLogInfo(ctx context.Context, keyvals ...interface{}) context.Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if none was
// set.
func GetLogger(ctx context.Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
