package collisions

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	queries       prometheus.Counter
	collisions    prometheus.Counter
	nodesVisited  prometheus.Counter
	buildDuration prometheus.Histogram
}

func newMetrics(r prometheus.Registerer) *metrics {
	return &metrics{
		queries: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "cornerstone_collision_queries_total",
			Help: "Total number of halo box queries answered by the collision engine.",
		}),
		collisions: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "cornerstone_collisions_total",
			Help: "Total number of leaf collisions reported.",
		}),
		nodesVisited: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "cornerstone_index_nodes_visited_total",
			Help: "Total number of radix index records tested against query boxes.",
		}),
		buildDuration: promauto.With(r).NewHistogram(prometheus.HistogramOpts{
			Name:    "cornerstone_index_build_duration_seconds",
			Help:    "Time taken to build the binary radix index.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}
