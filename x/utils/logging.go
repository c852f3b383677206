package utils

import (
	"context"
	"time"

	"github.com/iov-one/xswap"
)

// Logging is a decorator to log instructions as they pass through
type Logging struct{}

var _ xswap.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx context.Context, store xswap.KVStore, tx xswap.Tx, next xswap.Checker) (*xswap.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx context.Context, store xswap.KVStore, tx xswap.Tx, next xswap.Deliverer) (*xswap.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx context.Context, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := xswap.GetLogger(ctx).With("duration", delta/time.Microsecond)

	// An empty message is still logged for the duration and error.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
