// SPDX-License-Identifier: MIT
// Package: bipval/report
//
// summary.go - YAML run summary.

package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bipval/backbone"
	"github.com/katalvlaran/bipval/correction"
	"github.com/katalvlaran/bipval/pipeline"
	"github.com/katalvlaran/bipval/projection"
)

// Summary describes one run. Field names are the YAML keys.
type Summary struct {
	RunID  string `yaml:"run_id,omitempty"`
	Input  string `yaml:"input,omitempty"`
	Output string `yaml:"output,omitempty"`

	Tail   string  `yaml:"tail"`
	Method string  `yaml:"method"`
	Alpha  float64 `yaml:"alpha"`

	Load       LoadSummary       `yaml:"load"`
	Projection ProjectionSummary `yaml:"projection"`
	Memo       MemoSummary       `yaml:"memo"`

	Over  *TailSummary `yaml:"over,omitempty"`
	Under *TailSummary `yaml:"under,omitempty"`

	Warning string `yaml:"warning,omitempty"`
}

// LoadSummary reports loader and graph counts.
type LoadSummary struct {
	Records    int `yaml:"records"`
	Dropped    int `yaml:"dropped"`
	Duplicates int `yaml:"duplicates"`
	Set1       int `yaml:"set1"`
	Set2       int `yaml:"set2"`
	Edges      int `yaml:"edges"`
}

// ProjectionSummary reports projection size and cost.
type ProjectionSummary struct {
	Vertices     int     `yaml:"vertices"`
	Edges        int     `yaml:"edges"`
	Population   int     `yaml:"population"`
	Hypotheses   float64 `yaml:"hypotheses"`
	PairVisits   int64   `yaml:"pair_visits"`
	MaxHubDegree int     `yaml:"max_hub_degree"`
}

// MemoSummary reports p-value cache behavior.
type MemoSummary struct {
	Distinct    int `yaml:"distinct_triples"`
	OverHits    int `yaml:"over_hits"`
	OverMisses  int `yaml:"over_misses"`
	UnderHits   int `yaml:"under_hits"`
	UnderMisses int `yaml:"under_misses"`
}

// TailSummary reports one correction decision, the connectivity of the
// edges it validated and the maximum-weight spanning forest over them.
type TailSummary struct {
	Threshold    float64         `yaml:"threshold"`
	Passed       int             `yaml:"passed"`
	Failed       int             `yaml:"failed"`
	Backbone     *backbone.Stats `yaml:"backbone,omitempty"`
	ForestEdges  int             `yaml:"forest_edges"`
	ForestWeight int64           `yaml:"forest_weight"`
}

// NewSummary collects the counters of res.
func NewSummary(res *pipeline.Result) Summary {
	s := Summary{
		Tail:   res.Options.Tail.String(),
		Method: res.Options.Method.String(),
		Alpha:  res.Options.Alpha,
	}
	if el := res.Load; el != nil {
		s.Load = LoadSummary{
			Records:    el.Records,
			Dropped:    el.Dropped,
			Duplicates: el.Duplicates,
			Set1:       el.N1,
			Set2:       el.N2,
			Edges:      len(el.Edges),
		}
	}
	if p := res.Projection; p != nil {
		s.Projection = ProjectionSummary{
			Vertices:     len(p.Vertices),
			Edges:        len(p.Edges),
			Population:   p.Population,
			Hypotheses:   res.Nt,
			PairVisits:   p.Stats.PairVisits,
			MaxHubDegree: p.Stats.MaxHubDegree,
		}
	}
	if ev := res.Evaluation; ev != nil {
		s.Memo = MemoSummary{
			Distinct:    ev.Memo.Distinct(),
			OverHits:    ev.Memo.OverHits,
			OverMisses:  ev.Memo.OverMisses,
			UnderHits:   ev.Memo.UnderHits,
			UnderMisses: ev.Memo.UnderMisses,
		}
	}
	s.Over = tailSummary(res.Projection, res.Over)
	s.Under = tailSummary(res.Projection, res.Under)
	if res.Warning != nil {
		s.Warning = res.Warning.Error()
	}

	return s
}

func tailSummary(p *projection.Projection, d *correction.Decision) *TailSummary {
	if d == nil {
		return nil
	}
	ts := &TailSummary{Threshold: d.Threshold, Passed: d.Passed, Failed: len(d.Pass) - d.Passed}
	if st, err := backbone.Analyze(p, d.Pass); err == nil {
		ts.Backbone = &st
	}
	if forest, err := backbone.SpanningForest(p, d.Pass); err == nil {
		ts.ForestEdges = len(forest)
		for _, e := range forest {
			ts.ForestWeight += int64(e.Weight)
		}
	}

	return ts
}

// WriteSummary encodes s as YAML to w.
func WriteSummary(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("WriteSummary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteSummary: %w", err)
	}

	return nil
}
