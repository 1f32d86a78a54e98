// SPDX-License-Identifier: MIT
// Package: bipval/pipeline
//
// pipeline.go - Run: Graph → Projection → Evaluation → Correction.
//
// Every stage consumes the previous stage's immutable record and produces a
// new one; the Result keeps all of them for reporting. The context is
// checked between stages. An input that yields no projected edges is not an
// error: Result.Empty is set and Result.Warning wraps ErrEmptyGraph.

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/bipval/bipartite"
	"github.com/katalvlaran/bipval/correction"
	"github.com/katalvlaran/bipval/edgelist"
	"github.com/katalvlaran/bipval/projection"
	"github.com/katalvlaran/bipval/significance"
)

// Sentinel errors.
var (
	// ErrEmptyGraph marks a degenerate run: no input edges, or no edge
	// survives projection. It is reported via Result.Warning, never returned.
	ErrEmptyGraph = errors.New("pipeline: empty graph")

	// ErrNilEdgeList indicates Run was called without loader output.
	ErrNilEdgeList = errors.New("pipeline: edge list is nil")

	// ErrBadOptions indicates invalid Options.
	ErrBadOptions = errors.New("pipeline: invalid options")
)

// Stage names reported to hooks.
type Stage string

const (
	StageGraph      Stage = "graph"
	StageProjection Stage = "projection"
	StageEvaluation Stage = "evaluation"
	StageCorrection Stage = "correction"
)

// Hook observes stage completion; used for logging and metrics.
type Hook func(stage Stage, elapsed time.Duration)

// Options selects the test and the correction.
type Options struct {
	Tail     significance.Tail
	Method   correction.Method
	Alpha    float64 // stat_threshold in [0,1]
	HubLimit int     // 0 disables the projector hub guard
}

// Validate reports ErrBadOptions for an unknown tail or method, or an alpha
// outside [0,1].
func (o Options) Validate() error {
	switch {
	case !o.Tail.Valid():
		return fmt.Errorf("tail %v: %w", o.Tail, ErrBadOptions)
	case o.Method != correction.Bonferroni && o.Method != correction.FDR:
		return fmt.Errorf("method %v: %w", o.Method, ErrBadOptions)
	case o.Alpha < 0 || o.Alpha > 1 || math.IsNaN(o.Alpha):
		return fmt.Errorf("alpha %g: %w", o.Alpha, ErrBadOptions)
	case o.HubLimit < 0:
		return fmt.Errorf("hub limit %d: %w", o.HubLimit, ErrBadOptions)
	}

	return nil
}

// Result holds every stage record of one run.
type Result struct {
	Options    Options
	Load       *edgelist.EdgeList
	Graph      *bipartite.Graph
	Projection *projection.Projection
	Evaluation *significance.Evaluation

	// Over and Under are nil when the tail was not requested.
	Over  *correction.Decision
	Under *correction.Decision

	Nt float64 // hypothesis count n1(n1-1)/2

	Empty   bool
	Warning error
}

// Run executes the validation pipeline on loader output.
func Run(ctx context.Context, el *edgelist.EdgeList, opts Options, hooks ...Hook) (*Result, error) {
	if el == nil {
		return nil, ErrNilEdgeList
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	res := &Result{Options: opts, Load: el}

	// Stage 1: bipartite graph.
	err := stage(ctx, StageGraph, hooks, func() (err error) {
		res.Graph, err = el.Graph()
		return err
	})
	if err != nil {
		return nil, err
	}

	// Stage 2: projection onto set 1.
	err = stage(ctx, StageProjection, hooks, func() (err error) {
		var popts []projection.Option
		if opts.HubLimit > 0 {
			popts = append(popts, projection.WithHubLimit(opts.HubLimit))
		}
		res.Projection, err = projection.Project(res.Graph, popts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.Nt = correction.Hypotheses(res.Projection.Candidates)

	switch {
	case len(el.Edges) == 0:
		res.Empty, res.Warning = true, fmt.Errorf("no bipartite edges loaded: %w", ErrEmptyGraph)
	case res.Projection.Empty():
		res.Empty, res.Warning = true, fmt.Errorf("no set-1 pair shares a set-2 neighbor: %w", ErrEmptyGraph)
	}

	// Stage 3: p-values.
	err = stage(ctx, StageEvaluation, hooks, func() (err error) {
		res.Evaluation, err = significance.Evaluate(res.Projection, opts.Tail)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Stage 4: per-tail correction.
	err = stage(ctx, StageCorrection, hooks, func() error {
		if opts.Tail.HasOver() {
			d, err := correction.Apply(res.Evaluation.OverValues(), opts.Method, opts.Alpha, res.Nt)
			if err != nil {
				return fmt.Errorf("over: %w", err)
			}
			res.Over = &d
		}
		if opts.Tail.HasUnder() {
			d, err := correction.Apply(res.Evaluation.UnderValues(), opts.Method, opts.Alpha, res.Nt)
			if err != nil {
				return fmt.Errorf("under: %w", err)
			}
			res.Under = &d
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// stage runs fn after a cancellation check and reports its duration.
func stage(ctx context.Context, s Stage, hooks []Hook, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Run: before %s: %w", s, err)
	}
	start := time.Now()
	if err := fn(); err != nil {
		return fmt.Errorf("Run: %s: %w", s, err)
	}
	elapsed := time.Since(start)
	for _, h := range hooks {
		if h != nil {
			h(s, elapsed)
		}
	}

	return nil
}
