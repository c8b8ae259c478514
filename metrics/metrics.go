// Package metrics exports search activity of dijkstra.Engine instances as
// Prometheus metrics.
//
// Collector registers its series on a caller-supplied prometheus.Registerer
// and hands out dijkstra.Option hooks that feed them:
//
//	pathviz_steps_total              successful Step calls
//	pathviz_relaxations_total        distance improvements
//	pathviz_stale_entries_total      frontier entries discarded as stale
//	pathviz_searches_total{outcome}  finished searches by outcome
//	pathviz_frontier_size            frontier length after the latest Step
//	pathviz_search_steps             histogram of steps per finished search
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/gridgraph"
)

const namespace = "pathviz"

// Collector holds the Prometheus series for engine activity.
type Collector struct {
	steps        prometheus.Counter
	relaxations  prometheus.Counter
	stale        prometheus.Counter
	searches     *prometheus.CounterVec
	frontierSize prometheus.Gauge
	searchSteps  prometheus.Histogram
}

// New creates a Collector and registers its series on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Total number of successful search steps.",
		}),
		relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Total number of tentative distance improvements.",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_entries_total",
			Help:      "Total number of frontier entries discarded as stale.",
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of finished searches by outcome.",
		}, []string{"outcome"}),
		frontierSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_size",
			Help:      "Frontier length after the most recent step, stale entries included.",
		}),
		searchSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_steps",
			Help:      "Steps taken per finished search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
	}
	for _, col := range []prometheus.Collector{
		c.steps, c.relaxations, c.stale, c.searches, c.frontierSize, c.searchSteps,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// EngineOptions returns hooks that feed the collector from an Engine.
func (c *Collector) EngineOptions() []dijkstra.Option {
	return []dijkstra.Option{
		dijkstra.WithOnStep(func(_ dijkstra.Outcome, frontierLen int) {
			c.steps.Inc()
			c.frontierSize.Set(float64(frontierLen))
		}),
		dijkstra.WithOnRelax(func(_, _ gridgraph.Coord, _ int) {
			c.relaxations.Inc()
		}),
		dijkstra.WithOnStale(func(dijkstra.Entry) {
			c.stale.Inc()
		}),
		dijkstra.WithOnFinish(func(o dijkstra.Outcome, st dijkstra.Stats) {
			c.searches.WithLabelValues(o.String()).Inc()
			c.searchSteps.Observe(float64(st.Steps))
		}),
	}
}
