package sketch

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// FMSketch estimates distinct counts in bounded memory.
type FMSketch struct {
	hashset map[uint64]struct{}
	mask    uint64
	maxSize int
	best    uint64 // high-water mark of the raw estimate
}

// NewFMSketch returns a sketch retaining at most maxSize hashes (minimum 1).
func NewFMSketch(maxSize int) *FMSketch {
	maxSize = max(maxSize, 1)
	return &FMSketch{
		hashset: make(map[uint64]struct{}, maxSize+1),
		maxSize: maxSize,
	}
}

func hashID(id int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	return murmur3.Sum64(buf[:])
}

// Add records id.
func (s *FMSketch) Add(id int) {
	s.insertHashValue(hashID(id))
}

func (s *FMSketch) insertHashValue(h uint64) {
	if h&s.mask != 0 {
		return
	}
	s.hashset[h] = struct{}{}
	if len(s.hashset) > s.maxSize {
		s.mask = s.mask*2 + 1
		for k := range s.hashset {
			if k&s.mask != 0 {
				delete(s.hashset, k)
			}
		}
	}
	if raw := (s.mask + 1) * uint64(len(s.hashset)); raw > s.best {
		s.best = raw
	}
}

// Estimate returns the distinct-count estimate. Pruning after a mask change can
// lower the raw value, so the largest value reached so far is reported.
func (s *FMSketch) Estimate() uint64 { return s.best }

// Mask exposes the current sampling mask; (Mask()+1) is the sampling divisor.
func (s *FMSketch) Mask() uint64 { return s.mask }
