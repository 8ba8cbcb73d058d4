// Package kruskal is the incremental merge driver of junction.
//
// It consumes edges in non-decreasing weight order, one at a time, and threads a
// single accumulator (a dsu.Forest, a sketch.Counter and running counters) through
// the sequence, Kruskal-style. Two answers can be derived from one pass:
//
//   - Snapshot   — component sizes after exactly K edges (WithSnapshotAfter(k)).
//     When K exceeds the stream length the snapshot is taken at the end and marked
//     Exhausted. K = 0 snapshots the initial singletons.
//   - Completion — the shortest prefix after which exactly one component remains
//     (WithCompletion()). That prefix is the Kruskal MST completion point; for
//     N <= 1 it is 0 and no edge is needed.
//
// Per edge (a, b, w):
//
//  1. reject ids outside [0, N) and self-loops with ErrInvalidEdge (fatal);
//  2. add a and b to the distinct-point counter;
//  3. Union(a, b) on the forest;
//  4. increment EdgesConsumed;
//  5. snapshot when EdgesConsumed == K;
//  6. record the completion when the union merged and one component remains.
//
// The driver stops pulling from the stream once every requested answer exists.
// Edges must not be fed concurrently: each union depends on all earlier ones.
//
// Errors:
//
//   - ErrDegenerateQuery — negative K, rejected before any edge is read.
//   - ErrNoQuery         — neither answer was requested.
//   - ErrInvalidEdge     — an edge names an unknown point or joins a point to itself.
//   - ErrNeverConnected  — completion requested but the stream ended with several components.
package kruskal
