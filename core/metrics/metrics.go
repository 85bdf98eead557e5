package metrics

import (
	"net/http"

	"model-compare/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus metrics of serve mode.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	comparisons *prometheus.CounterVec
	nodes       *prometheus.HistogramVec
	loadErrors  *prometheus.CounterVec
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewCollector creates a collector with its own registry under namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		comparisons: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "compare_runs_total",
				Help:      "Total number of comparisons by document source",
			},
			[]string{"source"},
		),
		nodes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "compare_nodes",
				Help:      "Number of nodes per comparison category",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
			},
			[]string{"category"},
		),
		loadErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "compare_load_errors_total",
				Help:      "Total number of documents that failed to load, by kind",
			},
			[]string{"kind"},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mapping_cache_hits_total",
				Help:      "Total number of mapping cache hits",
			},
		),
		cacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mapping_cache_misses_total",
				Help:      "Total number of mapping cache misses",
			},
		),
	}

	registry.MustRegister(c.comparisons, c.nodes, c.loadErrors, c.cacheHits, c.cacheMisses)
	return c
}

// ObserveComparison records one finished comparison.
func (c *Collector) ObserveComparison(source string, s reconcile.Summary) {
	if c == nil {
		return
	}
	c.comparisons.WithLabelValues(source).Inc()
	c.nodes.WithLabelValues("only_in_first").Observe(float64(s.OnlyInFirst))
	c.nodes.WithLabelValues("only_in_second").Observe(float64(s.OnlyInSecond))
	c.nodes.WithLabelValues("common").Observe(float64(s.Common))
}

// LoadError records a document that failed to load.
func (c *Collector) LoadError(kind string) {
	if c == nil {
		return
	}
	c.loadErrors.WithLabelValues(kind).Inc()
}

// CacheResult records a mapping cache lookup.
func (c *Collector) CacheResult(hit bool) {
	if c == nil {
		return
	}
	if hit {
		c.cacheHits.Inc()
	} else {
		c.cacheMisses.Inc()
	}
}

// Handler exposes the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
