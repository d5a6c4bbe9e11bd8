package session

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	fetchesTotal     *prometheus.CounterVec
	fetchDuration    prometheus.Histogram
	mutationsTotal   *prometheus.CounterVec
	breakerState     *prometheus.GaugeVec
	snapshotSize     prometheus.Gauge
	currentPageGauge prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the collectors on the given
// registry, so tests can use an isolated one.
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		fetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_fetches_total",
				Help: "Total number of page fetches by outcome",
			},
			[]string{"status"},
		),
		fetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "console_fetch_duration_milliseconds",
				Help:    "Page fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		mutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_mutations_total",
				Help: "Total number of mutations by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		breakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "console_circuit_breaker_state",
				Help: "Record-service circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		snapshotSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "console_snapshot_records",
				Help: "Number of records on the current page snapshot",
			},
		),
		currentPageGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "console_current_page",
				Help: "Current page position",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]
	operation := tags["operation"]

	switch name {
	case "session.fetch":
		if status != "" {
			m.fetchesTotal.WithLabelValues(status).Inc()
		}
	case "session.mutation":
		if operation != "" && status != "" {
			m.mutationsTotal.WithLabelValues(operation, status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "session.fetch":
		m.fetchDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "session.breaker_state":
		m.breakerState.WithLabelValues(tags["service"]).Set(value)
	case "session.snapshot_records":
		m.snapshotSize.Set(value)
	case "session.current_page":
		m.currentPageGauge.Set(value)
	}
}
