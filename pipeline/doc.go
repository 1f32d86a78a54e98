// SPDX-License-Identifier: MIT

// Package pipeline wires the validation stages together:
//
//	edgelist.EdgeList → bipartite.Graph → projection.Projection
//	    → significance.Evaluation → correction.Decision (per tail)
//
// Run is synchronous and returns a Result holding every intermediate record.
// Hooks receive the wall-clock duration of each stage; the command-line tool
// uses them for structured logs and Prometheus histograms.
//
// Degenerate inputs (no edges, or no pair of set-1 vertices sharing a set-2
// neighbor) produce an empty Result with Warning wrapping ErrEmptyGraph, so
// callers can still emit a header-only table.
package pipeline
