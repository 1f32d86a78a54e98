// Package projection derives the weighted one-mode projection of a
// bipartite graph onto set 1.
//
// Two set-1 vertices u, v are joined iff they share at least one set-2
// neighbor; the edge weight is |N(u) ∩ N(v)|. Each surviving vertex carries
// its bipartite degree, which later becomes the "successes" parameter of
// the hypergeometric test.
//
// Complexity:
//
//   - Project:    Time O(Σ_v d(v)²) over set-2 vertices, Space O(E')
//   - BruteForce: Time O(n1² · d), reference implementation for tests
//
// A set-2 hub of degree d alone costs d(d-1)/2 pair visits. Stats reports
// the largest hub; WithHubLimit turns it into ErrHubTooLarge.
//
// Errors:
//
//   - ErrNilGraph     graph pointer is nil
//   - ErrHubTooLarge  a set-2 degree exceeds WithHubLimit
package projection
