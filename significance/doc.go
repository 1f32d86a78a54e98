// Package significance assigns hypergeometric p-values to projected edges.
//
// For a projected edge (u, v) with weight k, bipartite degrees K = deg(u),
// n = deg(v) and set-2 population N:
//
//	Over:  p = P(X ≥ k)   (co-occurrence higher than chance)
//	Under: p = P(X ≤ k)   (co-occurrence lower than chance)
//	Both:  both, independently
//
// Each distinct (k, K, n) is evaluated once (hypergeom.Memo); the memo
// statistics are reported on the Evaluation.
package significance
