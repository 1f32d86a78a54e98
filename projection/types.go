// SPDX-License-Identifier: MIT
// Package: bipval/projection
//
// types.go - Projection record, options and sentinel errors.

package projection

import "errors"

// Sentinel errors returned by Project.
var (
	// ErrNilGraph indicates a nil *bipartite.Graph.
	ErrNilGraph = errors.New("projection: graph is nil")

	// ErrHubTooLarge indicates a set-2 vertex whose degree exceeds the
	// configured hub limit; its pair enumeration would be quadratic.
	ErrHubTooLarge = errors.New("projection: set-2 hub exceeds degree limit")
)

// Vertex is a set-1 vertex that survives projection (projected degree > 0).
type Vertex struct {
	Index      int   // set-1 index in the bipartite graph
	OriginalID int64 // source identifier
	Degree     int   // bipartite degree: number of set-2 neighbors
}

// Edge is a projected edge between two set-1 vertices, Source < Target.
type Edge struct {
	Source int // set-1 index
	Target int // set-1 index
	Weight int // shared set-2 neighbors, always ≥ 1
}

// Stats describes the cost of the pair enumeration.
type Stats struct {
	PairVisits   int64 // Σ d(v)(d(v)-1)/2 over set-2 vertices
	MaxHubDegree int   // largest set-2 degree
	HubVertex    int   // index of that vertex (-1 if set 2 is empty)
}

// Projection is the weighted one-mode projection onto set 1.
// It is immutable once returned by Project.
type Projection struct {
	// Vertices lists surviving set-1 vertices in ascending index order.
	Vertices []Vertex

	// Edges lists projected edges sorted by (Source, Target).
	Edges []Edge

	// Candidates is the number of active set-1 vertices in the bipartite
	// graph; it defines the hypothesis space n1(n1-1)/2.
	Candidates int

	// Population is the number of active set-2 vertices (hypergeometric N).
	Population int

	Stats Stats

	byIndex map[int]int // set-1 index → position in Vertices
}

// Vertex returns the surviving vertex with the given set-1 index.
func (p *Projection) Vertex(index int) (Vertex, bool) {
	i, ok := p.byIndex[index]
	if !ok {
		return Vertex{}, false
	}

	return p.Vertices[i], true
}

// Empty reports whether the projection has no edges.
func (p *Projection) Empty() bool { return len(p.Edges) == 0 }

// Option configures Project.
type Option func(*config)

type config struct {
	hubLimit int
}

// WithHubLimit makes Project fail with ErrHubTooLarge when any set-2 vertex
// has more than limit neighbors. Zero disables the check. Panics if limit < 0.
func WithHubLimit(limit int) Option {
	if limit < 0 {
		panic("projection: WithHubLimit(limit<0)")
	}

	return func(c *config) { c.hubLimit = limit }
}
