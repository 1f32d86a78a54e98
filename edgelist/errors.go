// SPDX-License-Identifier: MIT
// Package: bipval/edgelist
//
// errors.go - sentinel errors and the structured record error.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrMalformedInput) or
//     errors.As(err, *MalformedInputError) to recover the offending line.
//   • Sentinels are never formatted at the definition site; context is added
//     with %w at the call site.

package edgelist

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates a record that could not be parsed as two
	// integer vertex identifiers (plus an optional numeric weight).
	ErrMalformedInput = errors.New("edgelist: malformed input")

	// ErrNilReader indicates Parse was called with a nil io.Reader.
	ErrNilReader = errors.New("edgelist: reader is nil")
)

// MalformedInputError reports the 1-based line and raw text of a record that
// failed to parse. It unwraps to ErrMalformedInput.
type MalformedInputError struct {
	Line   int    // 1-based line number in the source
	Record string // raw record text, trimmed
	Err    error  // underlying parse error (strconv.*), may be nil
}

// Error implements error.
func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("edgelist: malformed input at line %d %q: %v", e.Line, e.Record, e.Err)
	}

	return fmt.Sprintf("edgelist: malformed input at line %d %q", e.Line, e.Record)
}

// Is makes errors.Is(err, ErrMalformedInput) succeed for every *MalformedInputError.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// Unwrap exposes the underlying parse error.
func (e *MalformedInputError) Unwrap() error { return e.Err }
