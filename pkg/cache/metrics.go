package cache

import "github.com/prometheus/client_golang/prometheus"

// cacheMetrics mirrors the statistics counters as Prometheus metrics.
type cacheMetrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
	sets   prometheus.Counter
	size   prometheus.Gauge
}

func newCacheMetrics(reg prometheus.Registerer, name string) (*cacheMetrics, error) {
	labels := prometheus.Labels{"cache": name}
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ocpp",
			Subsystem:   "cache",
			Name:        "hits_total",
			ConstLabels: labels,
			Help:        "Total number of cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ocpp",
			Subsystem:   "cache",
			Name:        "misses_total",
			ConstLabels: labels,
			Help:        "Total number of cache misses",
		}),
		sets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ocpp",
			Subsystem:   "cache",
			Name:        "sets_total",
			ConstLabels: labels,
			Help:        "Total number of cache set operations",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ocpp",
			Subsystem:   "cache",
			Name:        "size",
			ConstLabels: labels,
			Help:        "Current number of entries in the cache",
		}),
	}

	for _, c := range []prometheus.Collector{m.hits, m.misses, m.sets, m.size} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *cacheMetrics) recordHit()       { m.hits.Inc() }
func (m *cacheMetrics) recordMiss()      { m.misses.Inc() }
func (m *cacheMetrics) recordSet()       { m.sets.Inc() }
func (m *cacheMetrics) updateSize(n int) { m.size.Set(float64(n)) }
