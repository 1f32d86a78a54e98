// SPDX-License-Identifier: MIT
// Package: bipval/significance
//
// evaluator.go - per-edge hypergeometric p-values.
//
// Implementation:
//   - Stage 1: Validate inputs (nil projection, unknown tail).
//   - Stage 2: Build one hypergeom.Memo for the projection's population N.
//   - Stage 3: For each projected edge, form (k, K, n) from its weight and
//     endpoint degrees and look up the requested tails.
//
// Complexity:
//   - Time O(E' + T·w) where T is the number of distinct triples and w the
//     width of the summed tail; Space O(E' + T).

package significance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bipval/hypergeom"
	"github.com/katalvlaran/bipval/projection"
)

// Record is the immutable evaluation result for one projected edge.
// POver/PUnder are NaN when the corresponding tail was not requested.
type Record struct {
	Edge   projection.Edge
	Triple hypergeom.Triple
	POver  float64
	PUnder float64
}

// Evaluation collects the records of one run.
type Evaluation struct {
	Tail       Tail
	Population int
	Records    []Record
	Memo       hypergeom.MemoStats
}

// Evaluate computes p-values for every edge of p under the requested tail.
func Evaluate(p *projection.Projection, tail Tail) (*Evaluation, error) {
	if p == nil {
		return nil, ErrNilProjection
	}
	if !tail.Valid() {
		return nil, fmt.Errorf("Evaluate: %v: %w", tail, ErrUnknownTail)
	}

	memo, err := hypergeom.NewMemo(p.Population)
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}

	ev := &Evaluation{Tail: tail, Population: p.Population, Records: make([]Record, len(p.Edges))}
	for i, e := range p.Edges {
		src, _ := p.Vertex(e.Source)
		dst, _ := p.Vertex(e.Target)
		rec := Record{
			Edge:   e,
			Triple: hypergeom.Triple{Shared: e.Weight, Succ: src.Degree, Draws: dst.Degree},
			POver:  math.NaN(),
			PUnder: math.NaN(),
		}
		if tail.HasOver() {
			if rec.POver, err = memo.Over(rec.Triple); err != nil {
				return nil, fmt.Errorf("Evaluate: edge (%d,%d): %w", e.Source, e.Target, err)
			}
		}
		if tail.HasUnder() {
			if rec.PUnder, err = memo.Under(rec.Triple); err != nil {
				return nil, fmt.Errorf("Evaluate: edge (%d,%d): %w", e.Source, e.Target, err)
			}
		}
		ev.Records[i] = rec
	}
	ev.Memo = memo.Stats()

	return ev, nil
}

// OverValues returns the over-expression p-values in record order.
func (ev *Evaluation) OverValues() []float64 {
	return ev.values(func(r Record) float64 { return r.POver })
}

// UnderValues returns the under-expression p-values in record order.
func (ev *Evaluation) UnderValues() []float64 {
	return ev.values(func(r Record) float64 { return r.PUnder })
}

func (ev *Evaluation) values(pick func(Record) float64) []float64 {
	out := make([]float64, len(ev.Records))
	for i, r := range ev.Records {
		out[i] = pick(r)
	}

	return out
}
