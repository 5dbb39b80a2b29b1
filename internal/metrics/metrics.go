// Package metrics holds the Prometheus collectors of the relay.
// All methods are safe on a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "xrelay"

// Relay outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomeNoLink    = "no_link"
	OutcomeFetchFail = "fetch_failed"
	OutcomeSendFail  = "send_failed"
)

type Metrics struct {
	Registry *prometheus.Registry

	relays          *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	mediaSent       *prometheus.CounterVec
	cleanupFailures prometheus.Counter
	staleDirs       prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		relays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relays_total",
			Help:      "Handled text messages by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching a tweet with the extractor.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 160},
		}, []string{"result"}),
		mediaSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_sent_total",
			Help:      "Media files uploaded to Telegram by kind.",
		}, []string{"kind"}),
		cleanupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_failures_total",
			Help:      "Work dirs that could not be removed.",
		}),
		staleDirs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_dirs_removed_total",
			Help:      "Leftover work dirs removed by the sweep.",
		}),
	}

	m.Registry.MustRegister(
		m.relays,
		m.fetchDuration,
		m.mediaSent,
		m.cleanupFailures,
		m.staleDirs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) RelayFinished(outcome string) {
	if m == nil {
		return
	}
	m.relays.WithLabelValues(outcome).Inc()
}

func (m *Metrics) FetchObserved(d time.Duration, ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.fetchDuration.WithLabelValues(result).Observe(d.Seconds())
}

func (m *Metrics) MediaSent(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.mediaSent.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) CleanupFailed() {
	if m == nil {
		return
	}
	m.cleanupFailures.Inc()
}

func (m *Metrics) StaleDirsRemoved(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.staleDirs.Add(float64(n))
}
