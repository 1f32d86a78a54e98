// SPDX-License-Identifier: MIT
// Package: bipval/projection
//
// projector.go - Project (pair enumeration) and BruteForce (reference).
//
// Algorithm:
//   For each set-2 vertex v, every unordered pair {a,b} of its set-1
//   neighbors shares v, so counter[{a,b}]++. After all set-2 vertices are
//   visited, counter[{a,b}] = |N(a) ∩ N(b)|. Pairs never incremented have
//   weight 0 and are never materialised.
//
// Complexity:
//   • Time O(Σ_v d(v)²) over set-2 vertices v, plus O(E' log E') to sort
//     the E' projected edges. A single set-2 hub of degree d costs d²/2
//     pair visits on its own; use WithHubLimit to refuse such inputs.
//   • Space O(E').

package projection

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bipval/bipartite"
)

type pairKey struct{ a, b int }

// Project computes the weighted projection of g onto set 1.
//
// Complexity: O(Σ_{v∈set2} d(v)²) time, O(E') space for E' projected edges.
func Project(g *bipartite.Graph, opts ...Option) (*Projection, error) {
	// 1) Validate input and apply options.
	if g == nil {
		return nil, ErrNilGraph
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	set2 := g.Active(bipartite.Set2)

	// Stage 1: cost scan and hub guard before any enumeration.
	stats := Stats{HubVertex: -1}
	for _, v := range set2 {
		// 2) A vertex of degree d contributes d(d-1)/2 pair visits.
		d := g.Degree(v)
		stats.PairVisits += int64(d) * int64(d-1) / 2
		// 3) Track the largest hub; the first one wins ties.
		if d > stats.MaxHubDegree {
			stats.MaxHubDegree, stats.HubVertex = d, v
		}
	}
	if cfg.hubLimit > 0 && stats.MaxHubDegree > cfg.hubLimit {
		return nil, fmt.Errorf("Project: vertex %d has degree %d > %d: %w",
			stats.HubVertex, stats.MaxHubDegree, cfg.hubLimit, ErrHubTooLarge)
	}

	// Stage 2: count shared neighbors per unordered set-1 pair.
	counter := make(map[pairKey]int)
	for _, v := range set2 {
		// 4) Every pair of neighbors of v shares v; each pair is seen once per v.
		nb := g.Neighbors(v) // ascending, so nb[i] < nb[j] for i < j
		for i := 0; i < len(nb); i++ {
			for j := i + 1; j < len(nb); j++ {
				counter[pairKey{nb[i], nb[j]}]++
			}
		}
	}

	// Stage 3: materialise edges in (Source, Target) order.
	edges := make([]Edge, 0, len(counter))
	touched := make(map[int]struct{})
	for k, w := range counter {
		// 5) Map order is random; sortEdges restores determinism below.
		edges = append(edges, Edge{Source: k.a, Target: k.b, Weight: w})
		touched[k.a] = struct{}{}
		touched[k.b] = struct{}{}
	}
	sortEdges(edges)

	// Stage 4: keep only set-1 vertices with projected degree > 0.
	p := &Projection{
		Edges:      edges,
		Candidates: g.ActiveCount(bipartite.Set1),
		Population: len(set2),
		Stats:      stats,
		Vertices:   make([]Vertex, 0, len(touched)),
		byIndex:    make(map[int]int, len(touched)),
	}
	for v := 0; v < g.N1(); v++ {
		// 6) Ascending index keeps Vertices aligned with edge order.
		if _, ok := touched[v]; !ok {
			continue
		}
		p.byIndex[v] = len(p.Vertices)
		p.Vertices = append(p.Vertices, Vertex{Index: v, OriginalID: g.Label(v), Degree: g.Degree(v)})
	}

	return p, nil
}

// BruteForce computes the projected edges by intersecting the neighbor sets
// of every pair of active set-1 vertices. It is O(n1² · d) and exists to
// cross-check Project on small graphs.
func BruteForce(g *bipartite.Graph) []Edge {
	if g == nil {
		return nil
	}
	set1 := g.Active(bipartite.Set1)
	var out []Edge
	for i := 0; i < len(set1); i++ {
		for j := i + 1; j < len(set1); j++ {
			if w := intersectSorted(g.Neighbors(set1[i]), g.Neighbors(set1[j])); w > 0 {
				out = append(out, Edge{Source: set1[i], Target: set1[j], Weight: w})
			}
		}
	}

	return out
}

func intersectSorted(a, b []int) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return n
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Source != es[j].Source {
			return es[i].Source < es[j].Source
		}

		return es[i].Target < es[j].Target
	})
}
