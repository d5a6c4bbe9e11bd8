package session

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// PrometheusMetricsTestSuite is the test suite for PrometheusMetrics
type PrometheusMetricsTestSuite struct {
	suite.Suite
	metrics *PrometheusMetrics
}

func (s *PrometheusMetricsTestSuite) SetupTest() {
	recorder := NewPrometheusMetricsWithRegistry(prometheus.NewRegistry())
	s.metrics = recorder.(*PrometheusMetrics)
}

func TestPrometheusMetricsSuite(t *testing.T) {
	suite.Run(t, new(PrometheusMetricsTestSuite))
}

func (s *PrometheusMetricsTestSuite) TestFetchCounterByStatus() {
	s.metrics.IncrementCounter("session.fetch", map[string]string{"status": "success"})
	s.metrics.IncrementCounter("session.fetch", map[string]string{"status": "success"})
	s.metrics.IncrementCounter("session.fetch", map[string]string{"status": "failed"})
	s.metrics.IncrementCounter("session.fetch", map[string]string{"status": "stale_discarded"})

	s.Equal(float64(2), testutil.ToFloat64(s.metrics.fetchesTotal.WithLabelValues("success")))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.fetchesTotal.WithLabelValues("failed")))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.fetchesTotal.WithLabelValues("stale_discarded")))
}

func (s *PrometheusMetricsTestSuite) TestMutationCounterNeedsBothLabels() {
	s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "create", "status": "success"})
	s.metrics.IncrementCounter("session.mutation", map[string]string{"status": "success"})
	s.metrics.IncrementCounter("session.mutation", map[string]string{"operation": "create"})

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.mutationsTotal.WithLabelValues("create", "success")))
}

func (s *PrometheusMetricsTestSuite) TestUnknownMetricNameIsIgnored() {
	s.NotPanics(func() {
		s.metrics.IncrementCounter("something.else", map[string]string{"status": "success"})
		s.metrics.RecordProcessingTime("something.else", time.Second)
		s.metrics.RecordGauge("something.else", 1, nil)
	})
}

func (s *PrometheusMetricsTestSuite) TestGauges() {
	s.metrics.RecordGauge("session.snapshot_records", 7, nil)
	s.metrics.RecordGauge("session.current_page", 3, nil)
	s.metrics.RecordGauge("session.breaker_state", 1, map[string]string{"service": "records"})

	s.Equal(float64(7), testutil.ToFloat64(s.metrics.snapshotSize))
	s.Equal(float64(3), testutil.ToFloat64(s.metrics.currentPageGauge))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.breakerState.WithLabelValues("records")))
}

func (s *PrometheusMetricsTestSuite) TestFetchDurationObserved() {
	s.metrics.RecordProcessingTime("session.fetch", 25*time.Millisecond)
	s.Equal(1, testutil.CollectAndCount(s.metrics.fetchDuration))
}
