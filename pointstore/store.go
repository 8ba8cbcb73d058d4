package pointstore

import (
	"math"

	"github.com/pingcap/errors"
)

// Sentinel errors for pointstore operations.
var (
	// ErrOutOfRange indicates a point id outside [0, N).
	ErrOutOfRange = errors.New("pointstore: point id out of range")
	// ErrDimensionMismatch indicates coordinate vectors of differing lengths.
	ErrDimensionMismatch = errors.New("pointstore: all points must have the same dimension")
	// ErrEmptyPoint indicates a coordinate vector with no components.
	ErrEmptyPoint = errors.New("pointstore: point must have at least one coordinate")
	// ErrMalformedLine indicates an input line that is not a list of numbers.
	ErrMalformedLine = errors.New("pointstore: malformed point line")
	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("pointstore: coordinates must be finite")
)

// Point is a single loaded point. Coords aliases store memory and must not be modified.
type Point struct {
	ID     int
	Coords []float64
}

// Store is a fixed-size, indexable set of points. It is immutable once loaded
// and safe for concurrent readers.
type Store struct {
	dim    int
	coords []float64 // flat row-major, len = n*dim
	n      int
}

// Load copies coords into a new Store. All vectors must share one non-zero dimension
// and every component must be finite. An empty input yields an empty store with dimension 0.
//
// Error Conditions:
//   - ErrEmptyPoint        : a vector with no components.
//   - ErrDimensionMismatch : a vector whose length differs from the first.
//   - ErrNonFinite         : a NaN or ±Inf component.
//
// Complexity: O(N·D) time and memory.
func Load(coords [][]float64) (*Store, error) {
	if len(coords) == 0 {
		return &Store{}, nil
	}

	dim := len(coords[0])
	if dim == 0 {
		return nil, errors.Annotatef(ErrEmptyPoint, "id=0")
	}

	flat := make([]float64, 0, len(coords)*dim)
	for i, c := range coords {
		if len(c) == 0 {
			return nil, errors.Annotatef(ErrEmptyPoint, "id=%d", i)
		}
		if len(c) != dim {
			return nil, errors.Annotatef(ErrDimensionMismatch, "id=%d has %d coordinates, want %d", i, len(c), dim)
		}
		for j, v := range c {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Annotatef(ErrNonFinite, "id=%d component %d is %v", i, j, v)
			}
		}
		flat = append(flat, c...)
	}

	return &Store{dim: dim, coords: flat, n: len(coords)}, nil
}

// Len returns the number of points N.
func (s *Store) Len() int { return s.n }

// Dim returns the coordinate dimension (0 for an empty store).
func (s *Store) Dim() int { return s.dim }

// Valid reports whether id addresses a loaded point.
func (s *Store) Valid(id int) bool { return id >= 0 && id < s.n }

// Get returns the coordinate vector of id, or ErrOutOfRange.
func (s *Store) Get(id int) ([]float64, error) {
	if !s.Valid(id) {
		return nil, errors.Annotatef(ErrOutOfRange, "id=%d n=%d", id, s.n)
	}
	return s.at(id), nil
}

// Point returns the Point for id, or ErrOutOfRange.
func (s *Store) Point(id int) (Point, error) {
	c, err := s.Get(id)
	if err != nil {
		return Point{}, err
	}
	return Point{ID: id, Coords: c}, nil
}

// At returns the coordinates of a known-valid id without bounds reporting.
// Edge generation uses it in its inner loop; it panics on invalid ids.
func (s *Store) At(id int) []float64 { return s.at(id) }

func (s *Store) at(id int) []float64 {
	// Full slice expression keeps callers from appending into the next point.
	return s.coords[id*s.dim : (id+1)*s.dim : (id+1)*s.dim]
}
