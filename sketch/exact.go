package sketch

import "github.com/bits-and-blooms/bitset"

// Exact counts distinct ids with one bit per id.
type Exact struct {
	seen  *bitset.BitSet
	count uint64
}

// NewExact returns an exact counter sized for ids in [0, n). Larger ids grow it.
func NewExact(n int) *Exact {
	return &Exact{seen: bitset.New(uint(max(n, 0)))}
}

// Add marks id as seen. Negative ids are ignored.
func (e *Exact) Add(id int) {
	if id < 0 || e.seen.Test(uint(id)) {
		return
	}
	e.seen.Set(uint(id))
	e.count++
}

// Estimate returns the exact number of distinct ids added.
func (e *Exact) Estimate() uint64 { return e.count }
