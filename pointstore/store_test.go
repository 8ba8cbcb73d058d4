package pointstore_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/junction/pointstore"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Basic verifies ids, dimension and coordinate lookup.
func TestLoad_Basic(t *testing.T) {
	s, err := pointstore.Load([][]float64{{0, 0, 0}, {1, 0, 0}, {5, 5, 5}})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Dim())

	c, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5}, c)

	p, err := s.Point(1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, []float64{1, 0, 0}, p.Coords)
}

// TestLoad_CopiesInput ensures caller mutation after Load is invisible.
func TestLoad_CopiesInput(t *testing.T) {
	in := [][]float64{{1, 2}, {3, 4}}
	s, err := pointstore.Load(in)
	require.NoError(t, err)

	in[0][0] = 99
	c, _ := s.Get(0)
	assert.Equal(t, 1.0, c[0])
}

// TestLoad_Empty allows zero points.
func TestLoad_Empty(t *testing.T) {
	s, err := pointstore.Load(nil)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Dim())
	assert.False(t, s.Valid(0))
}

// TestLoad_Rejects covers dimension mismatch and empty vectors.
func TestLoad_Rejects(t *testing.T) {
	_, err := pointstore.Load([][]float64{{1, 2, 3}, {1, 2}})
	assert.Equal(t, pointstore.ErrDimensionMismatch, errors.Cause(err))

	_, err = pointstore.Load([][]float64{{}})
	assert.Equal(t, pointstore.ErrEmptyPoint, errors.Cause(err))

	_, err = pointstore.Load([][]float64{{1}, {}})
	assert.Equal(t, pointstore.ErrEmptyPoint, errors.Cause(err))
}

// TestLoad_NonFinite rejects NaN and infinities anywhere in the input.
func TestLoad_NonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := pointstore.Load([][]float64{{0, 0}, {1, bad}})
		require.Error(t, err)
		assert.Equal(t, pointstore.ErrNonFinite, errors.Cause(err), "value %v", bad)
		assert.Contains(t, err.Error(), "id=1 component 1")
	}

	s, err := pointstore.Load([][]float64{{math.MaxFloat64, -math.MaxFloat64}})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

// TestGet_OutOfRange checks both ends of the valid interval.
func TestGet_OutOfRange(t *testing.T) {
	s, err := pointstore.Load([][]float64{{1}, {2}})
	require.NoError(t, err)

	for _, id := range []int{-1, 2, 100} {
		_, err := s.Get(id)
		assert.Equal(t, pointstore.ErrOutOfRange, errors.Cause(err), "id=%d", id)
		_, err = s.Point(id)
		assert.Equal(t, pointstore.ErrOutOfRange, errors.Cause(err), "id=%d", id)
	}
}

// TestGet_NoAppendLeak makes sure appending to a returned vector cannot
// overwrite the neighbouring point.
func TestGet_NoAppendLeak(t *testing.T) {
	s, err := pointstore.Load([][]float64{{1, 1}, {2, 2}})
	require.NoError(t, err)

	c, _ := s.Get(0)
	_ = append(c, 42)
	next, _ := s.Get(1)
	assert.Equal(t, []float64{2, 2}, next)
}

// TestRead parses comma-separated lines, skipping blanks.
func TestRead(t *testing.T) {
	in := "162,817,812\n\n57, 618, 57\n906,360,560\n"
	s, err := pointstore.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	c, _ := s.Get(1)
	assert.Equal(t, []float64{57, 618, 57}, c)
}

// TestRead_Malformed reports the offending line number.
func TestRead_Malformed(t *testing.T) {
	_, err := pointstore.Read(strings.NewReader("1,2,3\n4,x,6\n"))
	require.Error(t, err)
	assert.Equal(t, pointstore.ErrMalformedLine, errors.Cause(err))
	assert.Contains(t, err.Error(), "line 2")

	_, err = pointstore.Read(strings.NewReader("1,2,3\n4,5\n"))
	assert.Equal(t, pointstore.ErrDimensionMismatch, errors.Cause(err))
}

// TestRead_NonFinite rejects textual NaN and infinities that ParseFloat accepts.
func TestRead_NonFinite(t *testing.T) {
	for _, in := range []string{"NaN,0,0\n1,0,0\n", "0,0,0\ninf,0,0\n", "0,0,0\n1,-Inf,0\n"} {
		_, err := pointstore.Read(strings.NewReader(in))
		assert.Equal(t, pointstore.ErrNonFinite, errors.Cause(err), "input %q", in)
	}

	// Overflowing literals are a parse error, not a silent infinity.
	_, err := pointstore.Read(strings.NewReader("1e400,0,0\n"))
	assert.Equal(t, pointstore.ErrMalformedLine, errors.Cause(err))
}
