// SPDX-License-Identifier: MIT

// Package metrics records per-run Prometheus metrics for bipval.
//
// bipval is a batch job, so nothing is served over HTTP: the collector owns a
// private registry that is written once per run in the text exposition
// format, ready for a node-exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bipval/pipeline"
)

const namespace = "bipval"

// Collector holds all metrics of one run.
type Collector struct {
	registry *prometheus.Registry

	StageDuration *prometheus.HistogramVec
	RecordsLoaded prometheus.Counter
	EdgesLoaded   prometheus.Gauge
	Projected     prometheus.Gauge
	Population    prometheus.Gauge
	Hypotheses    prometheus.Gauge
	MemoLookups   *prometheus.CounterVec
	EdgesPassed   *prometheus.GaugeVec
	LastSuccess   prometheus.Gauge
}

// NewCollector creates a collector on a fresh registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Pipeline stage duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"stage"},
		),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_loaded_total",
			Help:      "Edge list records parsed, duplicates included",
		}),
		EdgesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bipartite_edges",
			Help:      "Distinct bipartite edges",
		}),
		Projected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "projected_edges",
			Help:      "Edges in the one-mode projection",
		}),
		Population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "population",
			Help:      "Active set-2 vertices (hypergeometric N)",
		}),
		Hypotheses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hypotheses",
			Help:      "Hypothesis count n1(n1-1)/2",
		}),
		MemoLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "memo_lookups_total",
				Help:      "p-value cache lookups",
			},
			[]string{"tail", "result"},
		),
		EdgesPassed: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "edges_passed",
				Help:      "Projected edges passing the corrected test",
			},
			[]string{"tail"},
		),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last completed run",
		}),
	}

	registry.MustRegister(
		c.StageDuration,
		c.RecordsLoaded,
		c.EdgesLoaded,
		c.Projected,
		c.Population,
		c.Hypotheses,
		c.MemoLookups,
		c.EdgesPassed,
		c.LastSuccess,
	)

	return c
}

// Registry returns the private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Hook returns a pipeline hook observing stage durations.
func (c *Collector) Hook() pipeline.Hook {
	return func(stage pipeline.Stage, d time.Duration) {
		c.StageDuration.WithLabelValues(string(stage)).Observe(d.Seconds())
	}
}

// RecordResult copies the counters of a completed run.
func (c *Collector) RecordResult(res *pipeline.Result) {
	if el := res.Load; el != nil {
		c.RecordsLoaded.Add(float64(el.Records))
		c.EdgesLoaded.Set(float64(len(el.Edges)))
	}
	if p := res.Projection; p != nil {
		c.Projected.Set(float64(len(p.Edges)))
		c.Population.Set(float64(p.Population))
	}
	c.Hypotheses.Set(res.Nt)

	if ev := res.Evaluation; ev != nil {
		m := ev.Memo
		c.MemoLookups.WithLabelValues("over", "hit").Add(float64(m.OverHits))
		c.MemoLookups.WithLabelValues("over", "miss").Add(float64(m.OverMisses))
		c.MemoLookups.WithLabelValues("under", "hit").Add(float64(m.UnderHits))
		c.MemoLookups.WithLabelValues("under", "miss").Add(float64(m.UnderMisses))
	}
	if res.Over != nil {
		c.EdgesPassed.WithLabelValues("over").Set(float64(res.Over.Passed))
	}
	if res.Under != nil {
		c.EdgesPassed.WithLabelValues("under").Set(float64(res.Under.Passed))
	}
	c.LastSuccess.SetToCurrentTime()
}

// WriteToTextfile writes the registry to path atomically.
func (c *Collector) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
