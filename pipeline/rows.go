// SPDX-License-Identifier: MIT
// Package: bipval/pipeline
//
// rows.go - flattened per-edge view of a Result for emitters.

package pipeline

import "math"

// Row is one validated projected edge expressed in original identifiers.
// POver/PUnder are NaN and the matching Test flag false when the tail was
// not requested.
type Row struct {
	Source    int64
	Target    int64
	Weight    int
	POver     float64
	TestOver  bool
	PUnder    float64
	TestUnder bool
}

// Rows returns one Row per projected edge, in projection edge order.
func (r *Result) Rows() []Row {
	if r == nil || r.Evaluation == nil {
		return nil
	}
	rows := make([]Row, len(r.Evaluation.Records))
	for i, rec := range r.Evaluation.Records {
		src, _ := r.Projection.Vertex(rec.Edge.Source)
		dst, _ := r.Projection.Vertex(rec.Edge.Target)
		row := Row{
			Source: src.OriginalID,
			Target: dst.OriginalID,
			Weight: rec.Edge.Weight,
			POver:  math.NaN(),
			PUnder: math.NaN(),
		}
		if r.Over != nil {
			row.POver, row.TestOver = rec.POver, r.Over.Pass[i]
		}
		if r.Under != nil {
			row.PUnder, row.TestUnder = rec.PUnder, r.Under.Pass[i]
		}
		rows[i] = row
	}

	return rows
}

// Passed returns the number of edges passing the over- and under-expression
// tests; a tail that was not requested counts zero.
func (r *Result) Passed() (over, under int) {
	if r.Over != nil {
		over = r.Over.Passed
	}
	if r.Under != nil {
		under = r.Under.Passed
	}

	return over, under
}
