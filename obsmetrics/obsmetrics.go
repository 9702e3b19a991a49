// Package obsmetrics holds the Prometheus collectors the cmd/binsearchctl
// tooling exposes. The core binsearch and mappedfile packages stay
// dependency-free of metrics entirely; only the CLI layer observes them.
package obsmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Queries counts find/has-next/has-prev invocations issued through the
	// CLI, labeled by operation name and key width.
	Queries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "binsearch",
		Name:      "queries_total",
		Help:      "Number of binary-search query operations performed.",
	}, []string{"op", "width"})

	// QueryDuration observes wall-clock latency of a single query
	// operation, labeled the same way as Queries.
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "binsearch",
		Name:      "query_duration_seconds",
		Help:      "Latency of a single binary-search query operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "width"})

	// ConfigReloads counts how many times the serve command has swapped in
	// a newly configured MappedFile in response to a config file change.
	ConfigReloads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "binsearch",
		Name:      "config_reloads_total",
		Help:      "Number of times the serve command reloaded its column configuration.",
	})
)
