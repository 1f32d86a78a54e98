// SPDX-License-Identifier: MIT
// Package: bipval/significance
//
// tail.go - Tail selection and parsing.

package significance

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnknownTail indicates a tail name other than over, under or both.
	ErrUnknownTail = errors.New("significance: unknown tail")

	// ErrNilProjection indicates Evaluate was called with a nil projection.
	ErrNilProjection = errors.New("significance: projection is nil")
)

// Tail selects which side(s) of the null distribution are tested.
type Tail uint8

const (
	// Over tests over-expression: P(X ≥ k).
	Over Tail = 1 << iota
	// Under tests under-expression: P(X ≤ k).
	Under
	// Both tests each tail independently.
	Both = Over | Under
)

// ParseTail maps "over", "under" and "both" to a Tail.
func ParseTail(s string) (Tail, error) {
	switch s {
	case "over":
		return Over, nil
	case "under":
		return Under, nil
	case "both":
		return Both, nil
	default:
		return 0, fmt.Errorf("ParseTail(%q): %w", s, ErrUnknownTail)
	}
}

// String implements fmt.Stringer.
func (t Tail) String() string {
	switch t {
	case Over:
		return "over"
	case Under:
		return "under"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Tail(%d)", uint8(t))
	}
}

// HasOver reports whether over-expression is requested.
func (t Tail) HasOver() bool { return t&Over != 0 }

// HasUnder reports whether under-expression is requested.
func (t Tail) HasUnder() bool { return t&Under != 0 }

// Valid reports whether t is Over, Under or Both.
func (t Tail) Valid() bool { return t == Over || t == Under || t == Both }
