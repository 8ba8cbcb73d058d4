package metric

import (
	"math"
	"strings"

	"github.com/pingcap/errors"
)

// Sentinel errors for metric lookup and construction.
var (
	// ErrUnknownMetric indicates ByName received a name it does not recognize.
	ErrUnknownMetric = errors.New("metric: unknown metric name")
	// ErrInvalidP indicates a Minkowski exponent below 1.
	ErrInvalidP = errors.New("metric: minkowski p must be >= 1")
)

// Names accepted by ByName.
const (
	NameEuclidean = "euclidean"
	NameManhattan = "manhattan"
	NameChebyshev = "chebyshev"
	NameMinkowski = "minkowski"
)

// Metric computes the distance between two coordinate vectors of equal length.
type Metric interface {
	Distance(a, b []float64) float64
}

// Func adapts a plain function into a Metric.
type Func func(a, b []float64) float64

// Distance calls f(a, b).
func (f Func) Distance(a, b []float64) float64 { return f(a, b) }

// Euclidean computes the L2 distance.
type Euclidean struct{}

func (Euclidean) Distance(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean returns the sum of squared component differences.
// It orders pairs exactly like Euclidean and skips the square root.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan computes the L1 (city-block) distance.
type Manhattan struct{}

func (Manhattan) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// Chebyshev computes the L-infinity distance.
type Chebyshev struct{}

func (Chebyshev) Distance(a, b []float64) float64 {
	var maxVal float64
	for i := range a {
		if v := math.Abs(a[i] - b[i]); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Minkowski computes the Minkowski distance parameterized by P (P >= 1).
// Build it with NewMinkowski to have P validated.
type Minkowski struct {
	P float64
}

// NewMinkowski returns a Minkowski metric or ErrInvalidP when p < 1.
func NewMinkowski(p float64) (Minkowski, error) {
	if p < 1 || math.IsNaN(p) {
		return Minkowski{}, errors.Annotatef(ErrInvalidP, "p=%v", p)
	}
	return Minkowski{P: p}, nil
}

func (m Minkowski) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), m.P)
	}
	return math.Pow(sum, 1.0/m.P)
}

// Default returns the metric used when none is configured (Euclidean).
func Default() Metric { return Euclidean{} }

// ByName resolves a metric from its configuration name (case-insensitive).
// An empty name yields Default. Minkowski requires p; other metrics ignore it.
func ByName(name string, p ...float64) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameEuclidean, "l2":
		return Euclidean{}, nil
	case NameManhattan, "l1":
		return Manhattan{}, nil
	case NameChebyshev, "linf":
		return Chebyshev{}, nil
	case NameMinkowski:
		exp := 2.0
		if len(p) > 0 {
			exp = p[0]
		}
		return NewMinkowski(exp)
	default:
		return nil, errors.Annotatef(ErrUnknownMetric, "name=%q", name)
	}
}
