package dsu_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/junction/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rootSizeSum adds ComponentSize over distinct roots.
func rootSizeSum(f *dsu.Forest) int {
	seen := make(map[int]bool)
	var sum int
	for i := 0; i < f.Len(); i++ {
		r := f.Find(i)
		if !seen[r] {
			seen[r] = true
			sum += f.ComponentSize(r)
		}
	}
	return sum
}

// TestNew starts with N singletons.
func TestNew(t *testing.T) {
	f := dsu.New(5)
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.ComponentCount())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, f.Find(i))
		assert.Equal(t, 1, f.ComponentSize(i))
	}
	assert.Equal(t, dsu.Sizes{1, 1, 1, 1, 1}, f.Sizes())

	empty := dsu.New(0)
	assert.Zero(t, empty.ComponentCount())
	assert.Empty(t, empty.Sizes())
	assert.Zero(t, dsu.New(-3).Len())
}

// TestUnion_ReturnsMergeFlag: first union merges, repeat is a no-op.
func TestUnion_ReturnsMergeFlag(t *testing.T) {
	f := dsu.New(4)
	assert.True(t, f.Union(1, 3))
	assert.Equal(t, 3, f.ComponentCount())
	assert.Equal(t, 2, f.ComponentSize(1))
	assert.True(t, f.Connected(1, 3))

	assert.False(t, f.Union(3, 1))
	assert.False(t, f.Union(1, 1))
	assert.Equal(t, 3, f.ComponentCount())
}

// TestUnion_BySize attaches the smaller root under the larger, and b under a on ties.
func TestUnion_BySize(t *testing.T) {
	f := dsu.New(4)
	f.Union(0, 1)
	f.Union(0, 2)
	big := f.Find(0)

	f.Union(3, 0)
	assert.Equal(t, big, f.Find(3), "singleton must attach under the larger root")

	g := dsu.New(2)
	g.Union(0, 1)
	assert.Equal(t, 0, g.Find(1), "equal sizes attach b's root under a's root")
}

// TestFind_PathCompression checks that every node on the path ends at the root.
func TestFind_PathCompression(t *testing.T) {
	f := dsu.New(8)
	// Build two 4-trees and join them so depth > 1 exists.
	f.Union(0, 1)
	f.Union(2, 3)
	f.Union(0, 2)
	f.Union(4, 5)
	f.Union(6, 7)
	f.Union(4, 6)
	f.Union(0, 4)

	root := f.Find(7)
	parents := f.Parents()
	assert.Equal(t, root, parents[7])
	assert.Equal(t, root, parents[parents[7]])
}

// TestFind_Idempotent: the second Find returns the same root and mutates nothing.
func TestFind_Idempotent(t *testing.T) {
	f := dsu.New(16)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 12; i++ {
		f.Union(r.Intn(16), r.Intn(16))
	}
	for id := 0; id < 16; id++ {
		first := f.Find(id)
		before := f.Parents()
		second := f.Find(id)
		assert.Equal(t, first, second)
		assert.Equal(t, before, f.Parents(), "second Find(%d) must not mutate", id)
	}
}

// TestInvariant_SizesSumToN holds after every union in a random sequence.
func TestInvariant_SizesSumToN(t *testing.T) {
	const n = 200
	f := dsu.New(n)
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 400; i++ {
		f.Union(r.Intn(n), r.Intn(n))
		require.Equal(t, n, rootSizeSum(f))
		require.Equal(t, n, f.Sizes().Total())
		require.Equal(t, f.ComponentCount(), f.Sizes().Count())
	}
}

// TestUnion_Commutative: union(a,b) and union(b,a) give identical partitions.
func TestUnion_Commutative(t *testing.T) {
	const n = 50
	r := rand.New(rand.NewSource(5))
	pairs := make([][2]int, 80)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	fwd, rev := dsu.New(n), dsu.New(n)
	for _, p := range pairs {
		assert.Equal(t, fwd.Union(p[0], p[1]), rev.Union(p[1], p[0]))
	}
	assert.Equal(t, fwd.ComponentCount(), rev.ComponentCount())
	assert.Equal(t, fwd.Components(), rev.Components())
	assert.Equal(t, fwd.Sizes(), rev.Sizes())
}

// TestFullyConnected: all pairs leave one component of size N.
func TestFullyConnected(t *testing.T) {
	const n = 12
	f := dsu.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			f.Union(i, j)
		}
	}
	assert.Equal(t, 1, f.ComponentCount())
	assert.Equal(t, n, f.ComponentSize(0))
	assert.Equal(t, dsu.Sizes{n}, f.Sizes())
}

// TestComponents lists members ascending, ordered by smallest member.
func TestComponents(t *testing.T) {
	f := dsu.New(6)
	f.Union(5, 1)
	f.Union(2, 4)
	f.Union(4, 0)
	assert.Equal(t, [][]int{{0, 2, 4}, {1, 5}, {3}}, f.Components())
}

// TestInvalidID panics with a descriptive message.
func TestInvalidID(t *testing.T) {
	f := dsu.New(3)
	assert.False(t, f.Valid(3))
	assert.False(t, f.Valid(-1))
	assert.PanicsWithValue(t, "dsu: id 3 out of range [0, 3)", func() { f.Find(3) })
	assert.Panics(t, func() { f.Union(0, -1) })
}

// TestSizes_Statistics covers the derived statistics.
func TestSizes_Statistics(t *testing.T) {
	s := dsu.Sizes{5, 4, 2, 1}
	assert.Equal(t, 4, s.Count())
	assert.Equal(t, 12, s.Total())
	assert.Equal(t, uint64(46), s.SumOfSquares())
	assert.Equal(t, uint64(40), s.ProductOfLargest(3))
	assert.Equal(t, uint64(40), s.ProductOfLargest(10))
	assert.Zero(t, s.ProductOfLargest(0))
	assert.Zero(t, dsu.Sizes{}.ProductOfLargest(3))
	assert.Zero(t, dsu.Sizes{}.SumOfSquares())
}

// TestSizes_Large keeps statistics exact past the int64 range and saturates past uint64.
func TestSizes_Large(t *testing.T) {
	if math.MaxInt < math.MaxInt64 {
		t.Skip("needs 64-bit int")
	}

	big := dsu.Sizes{2_500_000, 2_500_000, 2_000_000}
	assert.Equal(t, uint64(12_500_000_000_000_000_000), big.ProductOfLargest(3))

	huge := dsu.Sizes{1 << 22, 1 << 22, 1 << 22}
	assert.Equal(t, uint64(math.MaxUint64), huge.ProductOfLargest(3))

	v, w := uint64(3_500_000_000), uint64(1<<32)
	assert.Equal(t, uint64(12_250_000_000_000_000_000), dsu.Sizes{int(v)}.SumOfSquares())
	assert.Equal(t, uint64(math.MaxUint64), dsu.Sizes{int(v), int(v)}.SumOfSquares())
	assert.Equal(t, uint64(math.MaxUint64), dsu.Sizes{int(w)}.SumOfSquares())
}
