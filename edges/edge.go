package edges

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/junction/metric"
	"github.com/katalvlaran/junction/pointstore"
)

// Edge joins two point identities with a non-negative weight.
// Generated edges always satisfy A < B.
type Edge struct {
	A, B   int
	Weight float64
}

// String renders the edge as "a-b(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%g)", e.A, e.B, e.Weight)
}

// Compare orders edges by weight, then A, then B. It returns -1, 0 or +1.
func Compare(x, y Edge) int {
	if c := cmp.Compare(x.Weight, y.Weight); c != 0 {
		return c
	}
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	return cmp.Compare(x.B, y.B)
}

// Less reports whether x sorts strictly before y.
func Less(x, y Edge) bool { return Compare(x, y) < 0 }

// Count returns the number of unordered pairs over n points.
func Count(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// rowOffset returns the index of edge (i, i+1) in the (i, j) lexicographic layout.
func rowOffset(i, n int) int {
	return i*n - i*(i+1)/2
}

// AllPairs lazily yields every (i, j), i < j, with its distance under m.
// The yield order is lexicographic on (i, j), not by weight.
func AllPairs(store *pointstore.Store, m metric.Metric) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		n := store.Len()
		for i := 0; i < n; i++ {
			pi := store.At(i)
			for j := i + 1; j < n; j++ {
				if !yield(Edge{A: i, B: j, Weight: m.Distance(pi, store.At(j))}) {
					return
				}
			}
		}
	}
}

// Seq adapts a slice into a sequence in slice order.
func Seq(es []Edge) iter.Seq[Edge] {
	return slices.Values(es)
}

// SortedByWeight returns a sorted copy of es in the total (Weight, A, B) order.
func SortedByWeight(es []Edge) []Edge {
	out := slices.Clone(es)
	slices.SortFunc(out, Compare)
	return out
}
