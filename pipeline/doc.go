// Package pipeline wires a point store to the merge driver according to a Config.
//
// Flow: pointstore.Store → edges.Generate → ordering → kruskal.Run → kruskal.Report.
//
// Ordering is chosen per request:
//
//   - only a snapshot of K edges, Selection auto|partial → edges.Smallest(K);
//     the remaining edges are never sorted.
//   - otherwise → edges.SortParallel, a k-way merge of concurrently sorted runs.
//
// Config can be built in code (DefaultConfig) or decoded from TOML (LoadConfig):
//
//	metric         = "euclidean"
//	workers        = 8
//	snapshot_after = 1000 # omit to skip the snapshot query
//	completion     = true
//	selection      = "auto"
//	exact_threshold = 65536
//	sketch_size    = 10000
package pipeline
