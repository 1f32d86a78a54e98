// Package hypergeom implements the hypergeometric distribution used as the
// null model for projected-edge weights, plus a p-value cache.
//
// Null model: set-1 vertices u and v attach to K and n of the N set-2
// vertices uniformly at random. The number of shared neighbors then follows
// Hypergeometric(N, K, n), and
//
//	over-expression  p = P(X ≥ k) = SF(k-1)
//	under-expression p = P(X ≤ k) = CDF(k)
//
// Evaluation is done in log space (math.Lgamma) with direct tail summation,
// stable for populations far beyond float64 factorial range.
//
// Errors:
//
//   - ErrBadParams  K or n outside [0, N], negative N or k
package hypergeom

import "errors"

// ErrBadParams indicates parameters that do not define a distribution.
var ErrBadParams = errors.New("hypergeom: invalid parameters")
