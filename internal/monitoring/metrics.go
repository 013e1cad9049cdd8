package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	AnalyzedTotal    *prometheus.CounterVec
	FetchErrorsTotal *prometheus.CounterVec
	FetchDuration    prometheus.Histogram
}

func NewMetrics() *Metrics {
	return &Metrics{
		AnalyzedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credcheck_analyses_total",
			Help: "The total number of documents analyzed, by warning level",
		}, []string{"level"}),
		FetchErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credcheck_fetch_errors_total",
			Help: "The total number of fetch/parse failures",
		}, []string{"type"}), // e.g. 'fetch_failed', 'batch_fetch_failed'
		FetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "credcheck_fetch_duration_seconds",
			Help:    "Time spent fetching and parsing a page",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncAnalyzed(level string) {
	m.AnalyzedTotal.WithLabelValues(level).Inc()
}

func (m *Metrics) IncFetchErrors(errorType string) {
	m.FetchErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *Metrics) ObserveFetchDuration(seconds float64) {
	m.FetchDuration.Observe(seconds)
}
