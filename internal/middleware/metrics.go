package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes counters/histograms for RPC traffic.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the RPC metrics on reg (the default registerer when nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbook",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total RPC calls by procedure and result code",
		}, []string{"procedure", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salonbook",
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Latency of RPC calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// Interceptor returns a Connect interceptor recording every call.
// A nil *Metrics records nothing.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			m.observe(req.Spec().Procedure, err, time.Since(start))
			return resp, err
		}
	}
}

func (m *Metrics) observe(procedure string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := "ok"
	if err != nil {
		code = connect.CodeOf(err).String()
	}
	m.requestsTotal.WithLabelValues(procedure, code).Inc()
	m.requestDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}
