// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/polyroots/rootfind"
)

// Namespace prefixes every metric name.
const Namespace = "polyroots"

// Collector aggregates RoundEvents into Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	rounds      prometheus.Counter
	evaluations prometheus.Counter
	exactZero   prometheus.Counter
	duration    prometheus.Histogram
	remaining   prometheus.Gauge
}

// NewCollector creates a Collector with a private registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Collector{
		registry: reg,
		rounds: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rounds_total",
			Help:      "Number of completed locate/deflate rounds.",
		}),
		evaluations: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "evaluations_total",
			Help:      "Number of polynomial evaluations spent by the locator.",
		}),
		exactZero: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "exact_zero_total",
			Help:      "Number of searches that reached an exact zero of the polynomial.",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "locate_duration_seconds",
			Help:      "Wall time of a single root search.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		remaining: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "remaining_degree",
			Help:      "Degree of the working polynomial after the last deflation.",
		}),
	}
}

// OnRound implements rootfind.Observer.
func (c *Collector) OnRound(ev rootfind.RoundEvent) {
	c.rounds.Inc()
	c.evaluations.Add(float64(ev.Evaluations))
	if ev.ExactZero {
		c.exactZero.Inc()
	}
	c.duration.Observe(ev.Duration.Seconds())
	if ev.Remaining != nil {
		c.remaining.Set(float64(ev.Remaining.Degree()))
	}
}

// Registry exposes the private registry, e.g. for promhttp.HandlerFor.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteSummary prints one "name value" line per counter and gauge, sorted
// by name. Histograms are reported by sample count and sum.
func (c *Collector) WriteSummary(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				_, err = fmt.Fprintf(w, "%s %g\n", mf.GetName(), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				_, err = fmt.Fprintf(w, "%s %g\n", mf.GetName(), m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				_, err = fmt.Fprintf(w, "%s_count %d\n%s_sum %g\n",
					mf.GetName(), h.GetSampleCount(), mf.GetName(), h.GetSampleSum())
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
