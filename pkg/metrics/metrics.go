package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SearchesTotal    prometheus.Counter
	CacheHits        prometheus.Counter
	FallbackSearches prometheus.Counter
	ProviderErrors   *prometheus.CounterVec
	SearchDuration   prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SearchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of flight searches",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "The total number of searches served from cache",
		}),
		FallbackSearches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_searches_total",
			Help:      "The total number of searches served by the fallback provider",
		}),
		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "The total number of provider errors",
		}, []string{"provider"}),
		SearchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time taken to complete a flight search",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
