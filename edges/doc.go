// Package edges produces the candidate edges of the complete graph over a point
// store and orders them closest-pair first.
//
// For N points there are N·(N−1)/2 unordered pairs (i, j) with i < j; each becomes
// an Edge weighted by the configured metric.
//
// Ordering
//
//	Edges are totally ordered by (Weight, A, B) ascending. Equal weights are broken
//	lexicographically by point ids, so every run over the same input produces the
//	same sequence regardless of worker count.
//
// Producers
//
//   - AllPairs      — lazy iter.Seq in (i, j) order, no allocation per edge.
//   - Generate      — materialized slice, rows sharded across goroutines (errgroup).
//
// Orderings
//
//   - SortedByWeight — full sort; the reference implementation.
//   - SortParallel   — sorted runs built concurrently, streamed through a k-way heap merge.
//   - Smallest       — bounded selection (quickselect) of the k smallest, only those sorted.
//
// Complexity: generation O(N²·D); full sort O(E log E); Smallest O(E + k log k).
package edges
