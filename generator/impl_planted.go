// SPDX-License-Identifier: MIT
// Package: bipval/generator
//
// impl_planted.go - PlantedPartition: block-structured bipartite graph.
//
// Model:
//   Set 1 and set 2 are split into `blocks` equal groups (size1 and size2
//   vertices per block). A pair (i, j) is included with probability pIn when
//   i and j belong to the same block and pOut otherwise. With pIn ≫ pOut the
//   projection contains over-expressed intra-block edges, which makes the
//   model a ground truth for the validation pipeline.
//
// Contract:
//   • blocks, size1, size2 ≥ 1 (else ErrTooFewVertices).
//   • pIn, pOut ∈ [0,1] (else ErrInvalidProbability).
//   • rng required unless both probabilities are 0 or 1.
//
// Determinism:
//   • Trials in fixed order: i asc over set 1, j asc over set 2.

package generator

import "fmt"

const methodPlantedPartition = "PlantedPartition"

// PlantedPartition returns a Constructor for the block model described above.
// Set-1 vertex i belongs to block i/size1, set-2 vertex j to block j/size2.
func PlantedPartition(blocks, size1, size2 int, pIn, pOut float64) Constructor {
	return func(d *Dataset, cfg genConfig) error {
		if blocks < minPartitionSize || size1 < minPartitionSize || size2 < minPartitionSize {
			return fmt.Errorf("%s: blocks=%d, size1=%d, size2=%d: %w",
				methodPlantedPartition, blocks, size1, size2, ErrTooFewVertices)
		}
		if err := checkProbability(methodPlantedPartition, pIn); err != nil {
			return err
		}
		if err := checkProbability(methodPlantedPartition, pOut); err != nil {
			return err
		}
		if cfg.rng == nil && (isFractional(pIn) || isFractional(pOut)) {
			return fmt.Errorf("%s: rng is required: %w", methodPlantedPartition, ErrNeedRandSource)
		}

		n1, n2 := blocks*size1, blocks*size2
		for i := 0; i < n1; i++ {
			bi := i / size1
			for j := 0; j < n2; j++ {
				p := pOut
				if j/size2 == bi {
					p = pIn
				}
				if trial(cfg, p) {
					d.add(Pair{Left: cfg.left(i), Right: cfg.right(j)})
				}
			}
		}

		return nil
	}
}

// Block returns the planted block of set-1 vertex i for the given block size.
func Block(i, size1 int) int { return i / size1 }

func isFractional(p float64) bool { return p > probMin && p < probMax }
