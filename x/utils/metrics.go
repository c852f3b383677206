package utils

import (
	"context"
	"strconv"
	"time"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a decorator counting delivered instructions per opcode and
// result, and timing them. Check calls are not measured.
type Metrics struct {
	delivered *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var _ xswap.Decorator = (*Metrics)(nil)

// NewMetrics creates a Metrics decorator with its collectors registered
// in reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		delivered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "xswap_instructions_delivered_total",
			Help: "Instructions delivered successfully",
		}, []string{"op"}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "xswap_instructions_rejected_total",
			Help: "Instructions that failed, by error kind and code",
		}, []string{"op", "kind", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "xswap_instruction_duration_seconds",
			Help:    "Time to deliver one instruction",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"op"}),
	}
}

func (m *Metrics) Check(ctx context.Context, db xswap.KVStore, tx xswap.Tx, next xswap.Checker) (*xswap.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (m *Metrics) Deliver(ctx context.Context, db xswap.KVStore, tx xswap.Tx, next xswap.Deliverer) (*xswap.DeliverResult, error) {
	op := opLabel(ctx)
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		code := strconv.FormatUint(uint64(errors.Code(err)), 10)
		m.rejected.WithLabelValues(op, errors.KindOf(err).String(), code).Inc()
		return nil, err
	}
	m.delivered.WithLabelValues(op).Inc()
	return res, nil
}

func opLabel(ctx context.Context) string {
	if op, ok := xswap.GetOpcode(ctx); ok {
		return op.String()
	}
	return "unknown"
}
