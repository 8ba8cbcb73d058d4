package dsu

import (
	"fmt"
	"slices"
)

type node struct {
	parent int // equals its own index at a root
	size   int // meaningful at roots only
}

// Forest is a disjoint-set forest over ids 0..N-1. Not safe for concurrent use.
type Forest struct {
	nodes []node
	count int
}

// New returns a forest of n singleton components.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{nodes: make([]node, n), count: n}
	for i := range f.nodes {
		f.nodes[i] = node{parent: i, size: 1}
	}
	return f
}

// Len returns N, the number of elements.
func (f *Forest) Len() int { return len(f.nodes) }

// Valid reports whether id is in [0, N).
func (f *Forest) Valid(id int) bool { return id >= 0 && id < len(f.nodes) }

// Find returns the root of id's component and points every node on the
// traversed path directly at that root.
//
// Steps:
//  1. Panic if id is outside [0, N).
//  2. Walk parent links to the root.
//  3. Walk the same path again, redirecting each node to the root.
//
// Complexity:
//
//	Time:   O(α(N)) amortized together with Union by size; O(log N) worst case for one call.
//	Memory: O(1).
func (f *Forest) Find(id int) int {
	f.mustValid(id)

	// Walk to the root.
	root := id
	for f.nodes[root].parent != root {
		root = f.nodes[root].parent
	}
	// Compress: redirect each node on the path to root.
	for f.nodes[id].parent != root {
		id, f.nodes[id].parent = f.nodes[id].parent, root
	}
	return root
}

// Union merges the components of a and b. The root of the smaller component is
// attached under the root of the larger; on equal sizes b's root goes under a's.
// It returns false, changing nothing but path compression, when a and b are
// already connected.
//
// Steps:
//  1. Find both roots (panics on an id outside [0, N)).
//  2. Return false if the roots coincide.
//  3. Attach the smaller root under the larger, add sizes, drop the component count.
//
// Complexity:
//
//	Time:   O(α(N)) amortized; tree height never exceeds log2(N).
//	Memory: O(1).
func (f *Forest) Union(a, b int) bool {
	// 1. Roots, compressing both paths.
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	// 2. ra becomes the larger root; ties keep a's root on top.
	if f.nodes[ra].size < f.nodes[rb].size {
		ra, rb = rb, ra
	}
	// 3. Link and account.
	f.nodes[rb].parent = ra
	f.nodes[ra].size += f.nodes[rb].size
	f.count--
	return true
}

// Connected reports whether a and b share a component.
func (f *Forest) Connected(a, b int) bool { return f.Find(a) == f.Find(b) }

// ComponentSize returns the number of elements in id's component.
func (f *Forest) ComponentSize(id int) int { return f.nodes[f.Find(id)].size }

// ComponentCount returns the number of components.
func (f *Forest) ComponentCount() int { return f.count }

// Sizes returns the sizes of all components, largest first.
// Complexity: O(N + C·log C) for C components.
func (f *Forest) Sizes() Sizes {
	out := make(Sizes, 0, f.count)
	for i, nd := range f.nodes {
		if nd.parent == i {
			out = append(out, nd.size)
		}
	}
	slices.SortFunc(out, func(x, y int) int { return y - x })
	return out
}

// Components lists component members in ascending id order. Components are
// ordered by their smallest member.
// Complexity: O(N·α(N)) time, O(N) memory.
func (f *Forest) Components() [][]int {
	index := make(map[int]int, f.count)
	comps := make([][]int, 0, f.count)
	for i := range f.nodes {
		r := f.Find(i)
		k, ok := index[r]
		if !ok {
			k = len(comps)
			index[r] = k
			comps = append(comps, make([]int, 0, f.nodes[r].size))
		}
		comps[k] = append(comps[k], i)
	}
	return comps
}

func (f *Forest) mustValid(id int) {
	if !f.Valid(id) {
		panic(fmt.Sprintf("dsu: id %d out of range [0, %d)", id, len(f.nodes)))
	}
}
