// SPDX-License-Identifier: MIT
// Package: bipval/generator
//
// options.go - functional options and the resolved configuration.
//
// Deterministic defaults:
//   • rng          = nil (constructors that need randomness fail with ErrNeedRandSource)
//   • left offset  = 0   (set-1 ids 0,1,2,...)
//   • right offset = 0   (set-2 ids 0,1,2,...; columns keep the sides apart)

package generator

import "math/rand"

// Option customizes a generator run by mutating genConfig before any
// constructor executes. Later options override earlier ones.
type Option func(*genConfig)

// genConfig is passed by value to constructors.
type genConfig struct {
	rng         *rand.Rand
	leftOffset  int64
	rightOffset int64
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(c *genConfig) { c.rng = r }
}

// WithSeed creates a seeded *rand.Rand so that runs are reproducible.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithPartitionOffset shifts emitted identifiers: set-1 vertex i is written
// as left+i and set-2 vertex j as right+j. Use it to produce sparse or
// negative identifier domains for loader tests.
func WithPartitionOffset(left, right int64) Option {
	return func(c *genConfig) { c.leftOffset, c.rightOffset = left, right }
}

func newGenConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c genConfig) left(i int) int64  { return c.leftOffset + int64(i) }
func (c genConfig) right(j int) int64 { return c.rightOffset + int64(j) }
