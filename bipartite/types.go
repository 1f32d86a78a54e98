// SPDX-License-Identifier: MIT
// Package: bipval/bipartite
//
// types.go - Side, Edge, Graph, options and sentinel errors.
//
// Errors:
//
//	ErrBadPartition     - negative partition size.
//	ErrVertexOutOfRange - edge endpoint outside 0..N1+N2-1.
//	ErrSameSide         - both endpoints in the same vertex set.
//	ErrLabelCount       - WithLabels length differs from N1.
package bipartite

import "errors"

// Sentinel errors for bipartite graph construction.
var (
	// ErrBadPartition indicates a negative set size.
	ErrBadPartition = errors.New("bipartite: partition size must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint that is not a vertex index.
	ErrVertexOutOfRange = errors.New("bipartite: vertex index out of range")

	// ErrSameSide indicates an edge whose endpoints lie in the same set.
	ErrSameSide = errors.New("bipartite: edge endpoints in the same set")

	// ErrLabelCount indicates a label slice whose length is not N1.
	ErrLabelCount = errors.New("bipartite: label count does not match set 1 size")
)

// Side identifies the vertex set a vertex belongs to.
type Side uint8

const (
	// SideNone is returned for indices outside the graph.
	SideNone Side = iota
	// Set1 is the projected side (column 0 of the edge list).
	Set1
	// Set2 is the side that induces projected edges (column 1).
	Set2
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Set1:
		return "set1"
	case Set2:
		return "set2"
	default:
		return "none"
	}
}

// Edge is an unordered bipartite pair of global vertex indices.
// By convention U is in set 1 and V in set 2; New accepts either order.
type Edge struct {
	U int
	V int
}

// Graph is an immutable int-indexed bipartite adjacency structure.
//
// Set-1 vertices are 0..n1-1 and set-2 vertices are n1..n1+n2-1.
// adj[v] is the sorted, duplicate-free neighbor list of v.
type Graph struct {
	n1, n2 int

	adj        [][]int
	edges      int     // distinct bipartite edges
	duplicates int     // parallel edges collapsed during construction
	labels     []int64 // set-1 original identifiers; nil ⇒ index
}

// Option configures a Graph at construction time.
type Option func(*options)

type options struct {
	labels    []int64
	hasLabels bool
}

// WithLabels attaches source identifiers to set-1 vertices; labels[i] is the
// identifier of vertex i. New fails with ErrLabelCount if len(labels) != n1.
func WithLabels(labels []int64) Option {
	return func(o *options) {
		o.labels = labels
		o.hasLabels = true
	}
}
