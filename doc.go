// Package bipval validates the one-mode projection of a bipartite network.
//
// Projecting a bipartite graph (say, authors and papers) onto one of its
// vertex sets links two vertices whenever they share a neighbor, and weighs
// the link by the number of shared neighbors. Most of those links are noise:
// high-degree vertices share neighbors by chance. bipval keeps only the links
// whose overlap is statistically surprising under a hypergeometric null
// model, corrected for the n1(n1-1)/2 pairs tested.
//
//	edgelist/     - whitespace edge-list loader with dense ID remapping
//	bipartite/    - immutable two-set graph with sorted adjacency
//	projection/   - weighted projection onto set 1, O(Σ d²) pair counting
//	hypergeom/    - log-space hypergeometric tails + (k,K,n) memo
//	significance/ - per-edge over/under-expression p-values
//	correction/   - Bonferroni and Benjamini–Hochberg FDR decisions
//	pipeline/     - stage orchestration with timing hooks
//	report/       - validated edge list and YAML run summary
//	generator/    - deterministic synthetic bipartite datasets
//
// Quick example:
//
//	bipartite edges   0–10  0–11  1–10  1–11  2–10
//	projection        0─1 (w=2)   0─2 (w=1)   1─2 (w=1)
//
// Command-line tools live in cmd/bipval and cmd/bipgen.
//
//	go install github.com/katalvlaran/bipval/cmd/bipval@latest
package bipval
