package middleware

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics for RPC traffic and domain events.
type Metrics struct {
	registry     *prometheus.Registry
	rpcTotal     *prometheus.CounterVec
	rpcDuration  *prometheus.HistogramVec
	splitsSaved  *prometheus.CounterVec
	splitRejects prometheus.Counter
}

// NewMetrics creates a registry with the RPC and commission metrics registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dealdesk_rpc_requests_total",
			Help: "RPC calls by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dealdesk_rpc_duration_seconds",
			Help:    "RPC latency by procedure.",
			Buckets: prometheus.DefBuckets,
		}, []string{"procedure"}),
		splitsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dealdesk_commission_splits_saved_total",
			Help: "Commission splits saved, by number of recipients.",
		}, []string{"recipients"}),
		splitRejects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dealdesk_commission_splits_rejected_total",
			Help: "Save attempts rejected because the split did not total 100%.",
		}),
	}
	m.registry.MustRegister(m.rpcTotal, m.rpcDuration, m.splitsSaved, m.splitRejects)
	return m
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Interceptor records a count and latency sample for every unary call.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			procedure := req.Spec().Procedure
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.rpcTotal.WithLabelValues(procedure, code).Inc()
			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// SplitSaved records a successful save of a split with n recipients.
func (m *Metrics) SplitSaved(n int) {
	if m == nil {
		return
	}
	m.splitsSaved.WithLabelValues(recipientBucket(n)).Inc()
}

// SplitRejected records a save refused because the split was unbalanced.
func (m *Metrics) SplitRejected() {
	if m == nil {
		return
	}
	m.splitRejects.Inc()
}

func recipientBucket(n int) string {
	switch {
	case n <= 1:
		return "1"
	case n == 2:
		return "2"
	case n <= 4:
		return "3-4"
	default:
		return "5+"
	}
}
