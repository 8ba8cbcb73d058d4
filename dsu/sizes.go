package dsu

import (
	"math"
	"math/bits"
)

// Sizes is a multiset of component sizes, sorted largest first.
type Sizes []int

// Count returns the number of components.
func (s Sizes) Count() int { return len(s) }

// Total returns the sum of all sizes, which equals N for a full snapshot.
func (s Sizes) Total() int {
	var t int
	for _, v := range s {
		t += v
	}
	return t
}

// SumOfSquares returns Σ size², the number of ordered same-component pairs
// including self-pairs. The result is exact for any forest with fewer than
// 2^32 elements and saturates at math.MaxUint64 beyond that.
func (s Sizes) SumOfSquares() uint64 {
	var t uint64
	for _, v := range s {
		hi, sq := bits.Mul64(uint64(v), uint64(v))
		if hi != 0 {
			return math.MaxUint64
		}
		var carry uint64
		if t, carry = bits.Add64(t, sq, 0); carry != 0 {
			return math.MaxUint64
		}
	}
	return t
}

// ProductOfLargest multiplies the m largest sizes. m larger than Count uses
// every component; m <= 0 or an empty multiset yields 0. A product that does
// not fit in 64 bits saturates at math.MaxUint64.
func (s Sizes) ProductOfLargest(m int) uint64 {
	if m <= 0 || len(s) == 0 {
		return 0
	}
	p := uint64(1)
	for _, v := range s[:min(m, len(s))] {
		hi, lo := bits.Mul64(p, uint64(v))
		if hi != 0 {
			return math.MaxUint64
		}
		p = lo
	}
	return p
}
