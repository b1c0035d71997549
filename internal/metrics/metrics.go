// Package metrics tracks runtime statistics of a stepd server as
// Prometheus collectors.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds every server-level metric.
type Collector struct {
	registry *prometheus.Registry

	connectionsActive prometheus.Gauge
	connectionsTotal  prometheus.Counter
	requestsTotal     *prometheus.CounterVec
	protocolErrors    *prometheus.CounterVec
	requestDuration   prometheus.Histogram
}

// New creates a Collector with all metrics registered on a fresh
// registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		connectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "stepd",
			Name:      "connections_active",
			Help:      "Number of currently open client connections.",
		}),
		connectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stepd",
			Name:      "connections_total",
			Help:      "Lifetime count of accepted client connections.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stepd",
			Name:      "requests_total",
			Help:      "Requests dispatched, by command.",
		}, []string{"command"}),
		protocolErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stepd",
			Name:      "protocol_errors_total",
			Help:      "Requests rejected with a protocol error, by reason.",
		}, []string{"reason"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stepd",
			Name:      "request_duration_seconds",
			Help:      "Time spent dispatching one request.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}

	c.registry.MustRegister(
		c.connectionsActive,
		c.connectionsTotal,
		c.requestsTotal,
		c.protocolErrors,
		c.requestDuration,
	)
	return c
}

// Registry exposes the underlying Prometheus registry for the HTTP
// handler.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// ── Connection metrics ───────────────────────────────────────────────

// ConnectionOpened increments both the active and total counters.
func (c *Collector) ConnectionOpened() {
	if c == nil {
		return
	}
	c.connectionsActive.Inc()
	c.connectionsTotal.Inc()
}

// ConnectionClosed decrements the active connection gauge.
func (c *Collector) ConnectionClosed() {
	if c == nil {
		return
	}
	c.connectionsActive.Dec()
}

// ── Request metrics ──────────────────────────────────────────────────

// RequestHandled records one dispatched command and its duration.
func (c *Collector) RequestHandled(command string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.requestsTotal.WithLabelValues(command).Inc()
	c.requestDuration.Observe(elapsed.Seconds())
}

// ProtocolError records one rejected request.
func (c *Collector) ProtocolError(reason string) {
	if c == nil {
		return
	}
	c.protocolErrors.WithLabelValues(reason).Inc()
}
