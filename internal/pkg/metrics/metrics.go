package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "escrow"

// Metrics owns a private registry so that every process (and every test)
// gets an independent set of collectors.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec

	ledgerAppends   *prometheus.CounterVec
	intentsEnqueued *prometheus.CounterVec
	intentOutcomes  *prometheus.CounterVec
	disputes        *prometheus.CounterVec
	swept           prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests segmented by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		ledgerAppends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "appends_total",
			Help:      "Events appended to the status ledgers by sub-ledger and status.",
		}, []string{"ledger", "status"}),
		intentsEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intent",
			Name:      "enqueued_total",
			Help:      "Settlement intents enqueued by action.",
		}, []string{"action"}),
		intentOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intent",
			Name:      "transitions_total",
			Help:      "Settlement intent status transitions by action and new status.",
		}, []string{"action", "status"}),
		disputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispute",
			Name:      "events_total",
			Help:      "Dispute lifecycle events (opened, claim, resolved).",
		}, []string{"event"}),
		swept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweeper",
			Name:      "expired_total",
			Help:      "Pending transactions moved to FAILED by the sweeper.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDurations,
		m.ledgerAppends,
		m.intentsEnqueued,
		m.intentOutcomes,
		m.disputes,
		m.swept,
	)
	return m
}

func (m *Metrics) ObserveHTTP(route, method, status string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpDurations.WithLabelValues(route, method).Observe(seconds)
}

func (m *Metrics) LedgerAppended(ledger, status string) {
	m.ledgerAppends.WithLabelValues(ledger, status).Inc()
}

func (m *Metrics) IntentEnqueued(action string) {
	m.intentsEnqueued.WithLabelValues(action).Inc()
}

func (m *Metrics) IntentTransitioned(action, status string) {
	m.intentOutcomes.WithLabelValues(action, status).Inc()
}

func (m *Metrics) DisputeEvent(event string) {
	m.disputes.WithLabelValues(event).Inc()
}

func (m *Metrics) Swept(n int) {
	m.swept.Add(float64(n))
}

// PoolSnapshot is a point-in-time view of a connection pool.
type PoolSnapshot struct {
	Total    int32
	Idle     int32
	Acquired int32
	Max      int32
}

// WatchPool exports the pool's connection gauges, sampled on every scrape.
func (m *Metrics) WatchPool(snapshot func() PoolSnapshot) {
	gauge := func(name, help string, pick func(PoolSnapshot) int32) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(pick(snapshot())) })
	}
	m.registry.MustRegister(
		gauge("connections_total", "Open connections in the pool.", func(s PoolSnapshot) int32 { return s.Total }),
		gauge("connections_idle", "Idle connections in the pool.", func(s PoolSnapshot) int32 { return s.Idle }),
		gauge("connections_acquired", "Connections currently checked out.", func(s PoolSnapshot) int32 { return s.Acquired }),
		gauge("connections_max", "Configured pool size.", func(s PoolSnapshot) int32 { return s.Max }),
	)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
