package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	namespace     string
	registry      *prometheus.Registry
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	QueryDuration *prometheus.HistogramVec
}

// New registers the service collectors on a dedicated registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		namespace: namespace,
		registry:  prometheus.NewRegistry(),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "transaction lookups served from the cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "transaction lookups that went to the store",
		}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "store query duration by repository operation",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		m.CacheHits,
		m.CacheMisses,
		m.QueryDuration,
		collectors.NewGoCollector(),
	)

	return m
}

// RegisterCacheEntries exposes the cache size as a gauge read on scrape.
func (m *Metrics) RegisterCacheEntries(entries func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "cache",
		Name:      "entries",
		Help:      "entries currently held by the transaction cache",
	}, func() float64 {
		return float64(entries())
	}))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
