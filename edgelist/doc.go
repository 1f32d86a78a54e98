// Package edgelist loads whitespace-delimited bipartite edge lists and
// normalizes them into contiguous per-side indices.
//
// Input format (one record per line):
//
//	<set-1 id> <set-2 id> [weight]
//
// Identifiers are base-10 int64 values in any domain (negative, offset,
// sparse). Column 0 always belongs to set 1 and column 1 to set 2, even if
// the two columns share values. Lines starting with '#' are comments.
//
// Normalization:
//
//   - set-1 ids are ranked ascending into 0..N1-1 (OriginalIDs keeps the map back),
//   - set-2 ids are ranked ascending into N1..N1+N2-1,
//   - repeated pairs are collapsed and counted in Duplicates,
//   - records with fewer than two fields are dropped and counted in Dropped.
//
// A record that cannot be parsed aborts the load with *MalformedInputError,
// which matches errors.Is(err, ErrMalformedInput).
package edgelist
