// SPDX-License-Identifier: MIT
// Package: bipval/backbone
//
// backbone.go - connectivity of the validated projection.
//
// Analyze treats the edges that pass a correction as an undirected graph on
// the projection's vertices and reports its components. SpanningForest runs
// Kruskal over the same edges with weights in descending order, yielding the
// maximum-weight spanning forest of the validated backbone.
//
// Both use a disjoint-set with path compression and union by rank.
//
// Complexity:
//   - Analyze:        O(V + E·α(V))
//   - SpanningForest: O(E log E + E·α(V))

package backbone

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/bipval/projection"
)

// Sentinel errors.
var (
	// ErrNilProjection indicates a nil *projection.Projection.
	ErrNilProjection = errors.New("backbone: projection is nil")

	// ErrMaskLength indicates a pass mask whose length differs from the
	// number of projected edges.
	ErrMaskLength = errors.New("backbone: pass mask length mismatch")
)

// Stats summarizes the validated backbone.
type Stats struct {
	Edges       int   `yaml:"edges"`        // validated edges
	Vertices    int   `yaml:"vertices"`     // vertices with ≥ 1 validated edge
	Isolated    int   `yaml:"isolated"`     // projected vertices left without one
	Components  int   `yaml:"components"`   // components among Vertices
	Largest     int   `yaml:"largest"`      // vertex count of the largest component
	TotalWeight int64 `yaml:"total_weight"` // Σ weight over validated edges
}

// Analyze computes Stats for the edges of p selected by pass.
func Analyze(p *projection.Projection, pass []bool) (Stats, error) {
	f, err := newForest(p, pass)
	if err != nil {
		return Stats{}, err
	}

	var s Stats
	touched := make([]bool, len(p.Vertices))
	for i, e := range p.Edges {
		if !pass[i] {
			continue
		}
		u, v := f.pos[e.Source], f.pos[e.Target]
		touched[u], touched[v] = true, true
		f.union(u, v)
		s.Edges++
		s.TotalWeight += int64(e.Weight)
	}

	sizes := make(map[int]int)
	for v, ok := range touched {
		if !ok {
			s.Isolated++
			continue
		}
		s.Vertices++
		sizes[f.find(v)]++
	}
	s.Components = len(sizes)
	for _, n := range sizes {
		if n > s.Largest {
			s.Largest = n
		}
	}

	return s, nil
}

// SpanningForest returns the maximum-weight spanning forest of the validated
// edges. Ties are broken by (Source, Target), so the result is deterministic.
func SpanningForest(p *projection.Projection, pass []bool) ([]projection.Edge, error) {
	f, err := newForest(p, pass)
	if err != nil {
		return nil, err
	}

	edges := make([]projection.Edge, 0, len(p.Edges))
	for i, e := range p.Edges {
		if pass[i] {
			edges = append(edges, e)
		}
	}
	// p.Edges is already in (Source, Target) order; a stable sort keeps it.
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight > edges[j].Weight })

	var out []projection.Edge
	for _, e := range edges {
		if f.union(f.pos[e.Source], f.pos[e.Target]) {
			out = append(out, e)
			if len(out) == len(p.Vertices)-1 {
				break
			}
		}
	}

	return out, nil
}

// forest is a disjoint-set over projection vertex positions.
type forest struct {
	parent []int
	rank   []int
	pos    map[int]int // set-1 index → position in Vertices
}

func newForest(p *projection.Projection, pass []bool) (*forest, error) {
	if p == nil {
		return nil, ErrNilProjection
	}
	if len(pass) != len(p.Edges) {
		return nil, fmt.Errorf("%d flags for %d edges: %w", len(pass), len(p.Edges), ErrMaskLength)
	}

	n := len(p.Vertices)
	f := &forest{parent: make([]int, n), rank: make([]int, n), pos: make(map[int]int, n)}
	for i, v := range p.Vertices {
		f.parent[i] = i
		f.pos[v.Index] = i
	}

	return f, nil
}

// find returns the root of u, halving the path on the way.
func (f *forest) find(u int) int {
	for f.parent[u] != u {
		f.parent[u] = f.parent[f.parent[u]]
		u = f.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (f *forest) union(u, v int) bool {
	ru, rv := f.find(u), f.find(v)
	if ru == rv {
		return false
	}
	switch {
	case f.rank[ru] < f.rank[rv]:
		f.parent[ru] = rv
	case f.rank[ru] > f.rank[rv]:
		f.parent[rv] = ru
	default:
		f.parent[rv] = ru
		f.rank[ru]++
	}

	return true
}
