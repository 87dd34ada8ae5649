package contentvalidator

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "ccda_compare"

// Metrics records comparison activity as Prometheus collectors.
// All methods are safe for concurrent use.
type Metrics struct {
	runs     *prometheus.CounterVec
	findings *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil
// registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Comparisons performed, by whether the objective required the baseline checks.",
		}, []string{"baseline"}),
		findings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "findings_total",
			Help:      "Findings reported, by category and severity.",
		}, []string{"category", "severity"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "duration_seconds",
			Help:      "Time spent comparing one submission.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
}

// RecordRun records one comparison and its findings.
func (m *Metrics) RecordRun(baseline bool, duration time.Duration, res *Result) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(strconv.FormatBool(baseline)).Inc()
	m.duration.Observe(duration.Seconds())
	if res == nil {
		return
	}
	for _, f := range res.Findings {
		m.findings.WithLabelValues(f.Category, string(f.Severity)).Inc()
	}
}

// Runs returns the counter for runs with the given baseline label.
func (m *Metrics) Runs(baseline bool) prometheus.Counter {
	return m.runs.WithLabelValues(strconv.FormatBool(baseline))
}

// Findings returns the counter for findings of category and severity.
func (m *Metrics) Findings(category string, severity Severity) prometheus.Counter {
	return m.findings.WithLabelValues(category, string(severity))
}

// Collectors returns every collector, for callers that register manually.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.runs, m.findings, m.duration}
}
