// Package generator produces deterministic synthetic bipartite edge lists
// for fixtures, benchmarks and the bipgen command.
//
// Constructors:
//
//   - CompleteBipartite(n1, n2)                       every cross pair
//   - Hub(n1, hub)                                    one set-2 vertex shared by all of set 1
//   - RandomBipartite(n1, n2, p)                      independent pairs with probability p
//   - PlantedPartition(blocks, size1, size2, pIn, pOut) block model with a known answer
//
// Constructors are composed with Build and share one duplicate-free Dataset:
//
//	ds, err := generator.Build(
//	    []generator.Option{generator.WithSeed(42)},
//	    generator.PlantedPartition(4, 25, 40, 0.3, 0.01),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	el, _ := ds.EdgeList() // parsed back through package edgelist
//
// Options: WithSeed, WithRand, WithPartitionOffset.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed.
package generator
