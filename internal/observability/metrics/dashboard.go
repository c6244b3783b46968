package metrics

import "github.com/prometheus/client_golang/prometheus"

// DashboardMetrics exposes counters/histograms for dashboard snapshot
// computation.
type DashboardMetrics struct {
	computeTotal    *prometheus.CounterVec
	computeDuration prometheus.Histogram
	cacheLookups    *prometheus.CounterVec
}

func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	m := &DashboardMetrics{
		computeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "dashboard",
			Name:      "compute_total",
			Help:      "Total dashboard snapshot computations",
		}, []string{"outcome"}),
		computeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "dashboard",
			Name:      "compute_duration_seconds",
			Help:      "Latency of one dashboard snapshot computation",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "dashboard",
			Name:      "snapshot_cache_lookups_total",
			Help:      "Snapshot cache lookups by result",
		}, []string{"result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.computeTotal, m.computeDuration, m.cacheLookups)
	return m
}

func (m *DashboardMetrics) ObserveCompute(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.computeTotal.WithLabelValues(outcome).Inc()
	m.computeDuration.Observe(seconds)
}

func (m *DashboardMetrics) ObserveCacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
