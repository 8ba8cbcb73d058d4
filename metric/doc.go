// Package metric supplies the distance functions used to weigh candidate edges.
//
// A Metric maps two coordinate vectors of equal length to a non-negative float64.
// Euclidean (L2) is the default everywhere in junction; Manhattan, Chebyshev and
// Minkowski are available by name for callers that configure the engine from text.
//
// ⚙️ Usage:
//
//	m, err := metric.ByName("euclidean")
//	d := m.Distance([]float64{0, 0, 0}, []float64{1, 2, 2}) // 3
//
// Plain functions can be adapted with metric.Func.
//
// Metrics never validate vector lengths; callers (pointstore) guarantee a fixed dimension.
package metric
