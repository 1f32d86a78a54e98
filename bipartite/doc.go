// Package bipartite provides an immutable, int-indexed bipartite graph used
// as the input of one-mode projection.
//
// What:
//
//   - Vertices split into set 1 (indices 0..N1-1) and set 2 (N1..N1+N2-1).
//   - Edges only connect the two sets; parallel edges are collapsed.
//   - Degree and side queries are O(1) after O(V+E) construction.
//   - Holes (indices that are never an edge endpoint) are tolerated and
//     excluded from Active/ActiveCount/Population.
//
// Key Types:
//
//   - Graph: adjacency lists sorted ascending, optional set-1 labels.
//   - Edge:  unordered (U,V) pair of global indices.
//   - Side:  Set1 / Set2 / SideNone.
//
// Errors:
//
//   - ErrBadPartition      negative partition size
//   - ErrVertexOutOfRange  endpoint outside the index range
//   - ErrSameSide          endpoints in the same set
//   - ErrLabelCount        WithLabels length mismatch
//
// Example:
//
//	g, err := bipartite.New(3, 2, []bipartite.Edge{{0, 3}, {0, 4}, {1, 3}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Degree(0), g.Population()) // 2 2
package bipartite
