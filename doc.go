// Package junction is an in-memory engine for closest-pairs-first connectivity
// over a point cloud.
//
// Given N points and a distance metric, junction
//
//   - connects the K globally closest pairs and reports the sizes of the
//     resulting groups, and
//   - finds how many closest-pairs-first edges are needed before every point
//     belongs to one group (the Kruskal MST completion point),
//
// while estimating how many distinct points the consumed edges have touched.
//
// Packages, leaves first:
//
//	metric/     — distance functions (Euclidean default, Manhattan, Chebyshev, Minkowski)
//	pointstore/ — immutable point set with stable ids, plus a comma-separated reader
//	edges/      — all-pairs generation, total (weight, a, b) order, parallel sort, bounded selection
//	dsu/        — disjoint-set forest with path compression and union by size
//	sketch/     — distinct counters: exact bitset and a murmur3 FM sketch
//	kruskal/    — the sequential merge driver producing snapshots and the completion prefix
//	pipeline/   — Config (TOML) and the end-to-end Run
//	cmd/junction — command-line front end
//
// Quick example:
//
//	store, _ := pointstore.Load(coords)
//	cfg := pipeline.DefaultConfig()
//	cfg.SnapshotAfter = pipeline.SnapshotAt(1000)
//	rep, err := pipeline.Run(ctx, store, cfg, logger)
//	// rep.Snapshot.Sizes.ProductOfLargest(3), rep.Completion.PrefixLength
package junction
