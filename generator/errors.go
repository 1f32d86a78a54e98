// SPDX-License-Identifier: MIT
// Package: bipval/generator
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach context as "<Method>: <detail>: %w".
//   • Constructors never panic; option constructors panic on nonsense input.

package generator

import "errors"

// ErrTooFewVertices indicates a partition or block size below its minimum.
var ErrTooFewVertices = errors.New("generator: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("generator: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrConstructFailed indicates a nil constructor or an unrecoverable
// construction step.
var ErrConstructFailed = errors.New("generator: construction failed")
