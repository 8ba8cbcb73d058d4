// Package dsu implements a disjoint-set forest (union-find) over point ids 0..N-1.
//
// The forest is an arena: one {parent, size} record per id in a single slice,
// with integer parent links instead of node pointers. A root is its own parent.
//
// Operations
//
//   - Find(id)          — root of id's component, with full path compression.
//   - Union(a, b)       — merge by size; false when a and b were already joined.
//   - ComponentSize(id) — size stored at id's root.
//   - ComponentCount()  — O(1) side counter, decremented on every successful Union.
//   - Sizes()           — multiset of component sizes (descending) with statistics.
//
// Invariants
//
//   - the sizes of all roots sum to N;
//   - every id belongs to exactly one component;
//   - Find is idempotent: a second call on the same id changes nothing.
//
// Union is the only mutator besides the compression performed by Find.
// Ids outside [0, N) are programming errors and panic; validate with Valid first.
//
// Complexity: amortized O(α(N)) per Find/Union, O(N) memory.
package dsu
