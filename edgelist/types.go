// SPDX-License-Identifier: MIT
// Package: bipval/edgelist
//
// types.go - EdgeList result record and functional options.

package edgelist

import "github.com/katalvlaran/bipval/bipartite"

// Default parsing knobs (named, no magic literals).
const (
	defaultCommentPrefix = "#"
	maxLineBytes         = 1 << 20 // longest accepted record
	minFields            = 2       // source, target
	maxFields            = 3       // source, target, weight
)

// EdgeList is the normalized loader output.
//
// Set-1 vertices occupy indices 0..N1-1, set-2 vertices N1..N1+N2-1.
// OriginalIDs[i] is the source identifier of set-1 index i; set-2 originals
// are not retained since they never appear in the projected output.
type EdgeList struct {
	N1 int // distinct column-0 identifiers
	N2 int // distinct column-1 identifiers

	// Edges holds one entry per distinct (set-1, set-2) pair in order of
	// first appearance, using remapped global indices.
	Edges []bipartite.Edge

	// OriginalIDs maps set-1 index → source identifier (ascending).
	OriginalIDs []int64

	Records    int // records that parsed successfully (including duplicates)
	Dropped    int // records dropped for missing fields
	Duplicates int // repeated pairs collapsed into one edge
}

// Graph builds the bipartite graph described by the edge list, labelling
// set-1 vertices with their original identifiers.
func (el *EdgeList) Graph() (*bipartite.Graph, error) {
	return bipartite.New(el.N1, el.N2, el.Edges, bipartite.WithLabels(el.OriginalIDs))
}

// Option customizes the loader.
type Option func(*config)

type config struct {
	commentPrefix string
	strictFields  bool
}

// WithCommentPrefix sets the prefix marking comment lines. An empty prefix
// disables comment detection.
func WithCommentPrefix(prefix string) Option {
	return func(c *config) { c.commentPrefix = prefix }
}

// WithStrictFields rejects the optional third (weight) column.
func WithStrictFields() Option {
	return func(c *config) { c.strictFields = true }
}

func newConfig(opts ...Option) config {
	c := config{commentPrefix: defaultCommentPrefix}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
