// SPDX-License-Identifier: MIT
// Package: bipval/bipartite
//
// graph.go - construction and O(1) queries.
//
// Holes:
//   Index ranges may contain vertices that never appear as an edge endpoint
//   (sparse identifier spaces, hand-built graphs). Such vertices have degree
//   zero and are excluded from Active, ActiveCount and Population.

package bipartite

import (
	"fmt"
	"sort"
)

// New builds a Graph with n1 set-1 and n2 set-2 vertices.
//
// Parallel edges are collapsed; the number collapsed is reported by
// Duplicates. Endpoint order within an Edge does not matter.
//
// Complexity: O(V + E log d) where d is the maximum degree.
func New(n1, n2 int, edges []Edge, opts ...Option) (*Graph, error) {
	if n1 < 0 || n2 < 0 {
		return nil, fmt.Errorf("New: n1=%d, n2=%d: %w", n1, n2, ErrBadPartition)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasLabels && len(o.labels) != n1 {
		return nil, fmt.Errorf("New: %d labels for %d vertices: %w", len(o.labels), n1, ErrLabelCount)
	}

	g := &Graph{n1: n1, n2: n2, adj: make([][]int, n1+n2)}
	if o.hasLabels {
		g.labels = append([]int64(nil), o.labels...)
	}

	for i, e := range edges {
		u, v, err := g.orient(e)
		if err != nil {
			return nil, fmt.Errorf("New: edge %d (%d,%d): %w", i, e.U, e.V, err)
		}
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}

	// Sort and collapse parallel edges; set-1 lists carry the edge count.
	for v := range g.adj {
		before := len(g.adj[v])
		g.adj[v] = sortUnique(g.adj[v])
		if v < n1 {
			g.edges += len(g.adj[v])
			g.duplicates += before - len(g.adj[v])
		}
	}

	return g, nil
}

// orient returns (set-1 endpoint, set-2 endpoint).
func (g *Graph) orient(e Edge) (int, int, error) {
	su, sv := g.Side(e.U), g.Side(e.V)
	switch {
	case su == SideNone || sv == SideNone:
		return 0, 0, ErrVertexOutOfRange
	case su == sv:
		return 0, 0, ErrSameSide
	case su == Set1:
		return e.U, e.V, nil
	default:
		return e.V, e.U, nil
	}
}

func sortUnique(xs []int) []int {
	if len(xs) < 2 {
		return xs
	}
	sort.Ints(xs)
	w := 1
	for r := 1; r < len(xs); r++ {
		if xs[r] != xs[w-1] {
			xs[w] = xs[r]
			w++
		}
	}

	return xs[:w]
}

// N1 returns the size of set 1 including holes.
func (g *Graph) N1() int { return g.n1 }

// N2 returns the size of set 2 including holes.
func (g *Graph) N2() int { return g.n2 }

// Order returns N1+N2.
func (g *Graph) Order() int { return g.n1 + g.n2 }

// EdgeCount returns the number of distinct bipartite edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Duplicates returns how many parallel edges were collapsed by New.
func (g *Graph) Duplicates() int { return g.duplicates }

// Side reports the vertex set of v, or SideNone if v is out of range.
func (g *Graph) Side(v int) Side {
	switch {
	case v < 0 || v >= g.n1+g.n2:
		return SideNone
	case v < g.n1:
		return Set1
	default:
		return Set2
	}
}

// Degree returns the number of neighbors of v in the opposite set.
// Out-of-range indices have degree 0.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= len(g.adj) {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns the ascending neighbor indices of v. The slice is shared
// with the graph and must not be modified. Out-of-range indices yield nil.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= len(g.adj) {
		return nil
	}

	return g.adj[v]
}

// Label returns the original identifier of set-1 vertex v, or int64(v) when
// no labels were attached or v is not in set 1.
func (g *Graph) Label(v int) int64 {
	if g.labels != nil && v >= 0 && v < g.n1 {
		return g.labels[v]
	}

	return int64(v)
}

// Active returns the ascending indices of side s with degree > 0.
func (g *Graph) Active(s Side) []int {
	lo, hi := g.bounds(s)
	out := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		if len(g.adj[v]) > 0 {
			out = append(out, v)
		}
	}

	return out
}

// ActiveCount returns len(Active(s)) without allocating.
func (g *Graph) ActiveCount(s Side) int {
	lo, hi := g.bounds(s)
	n := 0
	for v := lo; v < hi; v++ {
		if len(g.adj[v]) > 0 {
			n++
		}
	}

	return n
}

// Population returns the number of set-2 vertices with at least one edge.
// It is the hypergeometric population size N.
func (g *Graph) Population() int { return g.ActiveCount(Set2) }

func (g *Graph) bounds(s Side) (int, int) {
	switch s {
	case Set1:
		return 0, g.n1
	case Set2:
		return g.n1, g.n1 + g.n2
	default:
		return 0, 0
	}
}
