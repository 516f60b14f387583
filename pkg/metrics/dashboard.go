package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DashboardMetrics records one observation per dashboard recomputation pass.
type DashboardMetrics struct {
	passes   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  prometheus.Histogram
}

// NewDashboardMetrics registers the dashboard metrics on the provided registerer.
func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	if reg == nil {
		return &DashboardMetrics{}
	}
	passes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_passes_total",
		Help: "Dashboard recomputation passes by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_pass_duration_seconds",
		Help:    "Duration of dashboard recomputation passes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	records := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_filtered_records",
		Help:    "Number of records left after filtering.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
	reg.MustRegister(passes, duration, records)
	return &DashboardMetrics{
		passes:   passes,
		duration: duration,
		records:  records,
	}
}

// ObservePass counts the pass and records its duration and filtered size.
func (m *DashboardMetrics) ObservePass(outcome string, records int, duration time.Duration) {
	if m == nil || m.passes == nil {
		return
	}
	outcome = normalizeLabel(outcome)
	m.passes.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(duration.Seconds())
	m.records.Observe(float64(records))
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}
