package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gl"

// Metrics holds the ledger's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	entriesPosted     *prometheus.CounterVec
	entriesRejected   *prometheus.CounterVec
	consistencyErrors *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		entriesPosted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "journal_entries_posted_total",
				Help:      "Total number of journal entries posted, by reference type",
			},
			[]string{"reference_type"},
		),
		entriesRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "journal_entries_rejected_total",
				Help:      "Total number of journal entries rejected, by error kind",
			},
			[]string{"kind"},
		),
		consistencyErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consistency_errors_total",
				Help:      "Total number of ledger consistency violations detected, by report",
			},
			[]string{"report"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latencies in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.entriesPosted,
		m.entriesRejected,
		m.consistencyErrors,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// EntryPosted counts a successfully posted entry.
func (m *Metrics) EntryPosted(referenceType string) {
	if m == nil {
		return
	}
	m.entriesPosted.WithLabelValues(referenceType).Inc()
}

// EntryRejected counts a rejected posting by error kind.
func (m *Metrics) EntryRejected(kind string) {
	if m == nil {
		return
	}
	m.entriesRejected.WithLabelValues(kind).Inc()
}

// ConsistencyError counts a failed trial balance or balance sheet check.
func (m *Metrics) ConsistencyError(report string) {
	if m == nil {
		return
	}
	m.consistencyErrors.WithLabelValues(report).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
