// SPDX-License-Identifier: MIT
// Package: bipval/generator
//
// impl_random.go - RandomBipartite(n1,n2,p): bipartite Erdős–Rényi model.
//
// Contract:
//   • n1 ≥ 1, n2 ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • rng required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1} is
//     deterministic and runs without one.
//
// Determinism:
//   • Bernoulli trials in fixed order: i asc over set 1, j asc over set 2.
//
// Complexity:
//   • Time O(n1·n2) trials, Space O(p·n1·n2) pairs.

package generator

import (
	"fmt"
	"math"
)

const (
	methodRandomBipartite = "RandomBipartite"
	probMin               = 0.0
	probMax               = 1.0
)

// RandomBipartite includes each of the n1·n2 cross pairs independently with
// probability p. Under this model projected weights follow the
// hypergeometric null closely, so few edges should validate.
func RandomBipartite(n1, n2 int, p float64) Constructor {
	return func(d *Dataset, cfg genConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d: %w", methodRandomBipartite, n1, n2, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomBipartite, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomBipartite, ErrNeedRandSource)
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if trial(cfg, p) {
					d.add(Pair{Left: cfg.left(i), Right: cfg.right(j)})
				}
			}
		}

		return nil
	}
}

// trial performs one Bernoulli(p) draw; p ∈ {0,1} never touches the rng.
func trial(cfg genConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}

func checkProbability(method string, p float64) error {
	if p < probMin || p > probMax || math.IsNaN(p) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}
