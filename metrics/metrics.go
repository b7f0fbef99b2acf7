// Package metrics exports scene tree frame statistics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	tree := sapling.NewSceneTree(sapling.WithObserver(metrics.NewCollector(reg)))
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phanxgames/sapling"
)

const namespace = "sapling"

// Collector implements sapling.FrameObserver.
type Collector struct {
	passDuration *prometheus.HistogramVec
	visited      *prometheus.GaugeVec
	passes       *prometheus.CounterVec
}

var _ sapling.FrameObserver = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		passDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Duration of scene tree traversal passes.",
			// 10µs .. ~40ms; a 60 Hz frame is 16.7ms.
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 13),
		}, []string{"pass"}),
		visited: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes_visited",
			Help:      "Nodes visited by the most recent pass.",
		}, []string{"pass"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_total",
			Help:      "Traversal passes run.",
		}, []string{"pass"}),
	}
	reg.MustRegister(c.passDuration, c.visited, c.passes)
	return c
}

func (c *Collector) observe(pass string, elapsed time.Duration, visited int) {
	c.passDuration.WithLabelValues(pass).Observe(elapsed.Seconds())
	c.visited.WithLabelValues(pass).Set(float64(visited))
	c.passes.WithLabelValues(pass).Inc()
}

// ObserveStep implements sapling.FrameObserver.
func (c *Collector) ObserveStep(elapsed time.Duration, visited int) {
	c.observe("step", elapsed, visited)
}

// ObserveDispatch implements sapling.FrameObserver.
func (c *Collector) ObserveDispatch(elapsed time.Duration, visited int) {
	c.observe("dispatch", elapsed, visited)
}
