package chase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search result label values.
const (
	resultFound  = "found"
	resultNoPath = "no_path"
	resultError  = "error"
)

// Metrics holds the Prometheus collectors fed by hunter searches.
// A nil *Metrics records nothing.
type Metrics struct {
	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
	pathLength prometheus.Histogram
	duration   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridchase",
			Subsystem: "hunter",
			Name:      "searches_total",
			Help:      "Hunter path searches by result (found, no_path, error).",
		}, []string{"result"}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridchase",
			Subsystem: "hunter",
			Name:      "expanded_tiles",
			Help:      "Tiles popped from the frontier per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridchase",
			Subsystem: "hunter",
			Name:      "path_length_tiles",
			Help:      "Length of found paths, endpoints included.",
			Buckets:   prometheus.LinearBuckets(1, 4, 10),
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridchase",
			Subsystem: "hunter",
			Name:      "search_duration_seconds",
			Help:      "Wall time of one search including reconstruction.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
		}),
	}
}

// observeSearch records one search. pathLen is ignored unless result is found.
func (m *Metrics) observeSearch(result string, expanded, pathLen int, d time.Duration) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(result).Inc()
	m.expanded.Observe(float64(expanded))
	m.duration.Observe(d.Seconds())
	if result == resultFound {
		m.pathLength.Observe(float64(pathLen))
	}
}
