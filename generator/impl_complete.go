// SPDX-License-Identifier: MIT
// Package: bipval/generator
//
// impl_complete.go - CompleteBipartite(n1,n2) and Hub(n1) constructors.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Emits every cross pair (i, j), i asc then j asc.
//   • No randomness; rng is ignored.
//
// Complexity:
//   • Time O(n1·n2), Space O(n1·n2) pairs.

package generator

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodHub               = "Hub"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}. In its projection
// every set-1 pair has weight n2 and every over-expression p-value is 1.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *Dataset, cfg genConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.add(Pair{Left: cfg.left(i), Right: cfg.right(j)})
			}
		}

		return nil
	}
}

// Hub returns a Constructor that attaches set-1 vertices 0..n1-1 to a single
// set-2 vertex with index hub. It models the quadratic worst case of the
// projector.
func Hub(n1, hub int) Constructor {
	return func(d *Dataset, cfg genConfig) error {
		if n1 < minPartitionSize || hub < 0 {
			return fmt.Errorf("%s: n1=%d, hub=%d: %w", methodHub, n1, hub, ErrTooFewVertices)
		}
		for i := 0; i < n1; i++ {
			d.add(Pair{Left: cfg.left(i), Right: cfg.right(hub)})
		}

		return nil
	}
}
