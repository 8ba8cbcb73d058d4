// Package pointstore holds the immutable point set a junction query runs over.
//
// Every point receives a stable integer identity equal to its load position
// (0..N-1) and a coordinate vector of the store-wide dimension. The store copies
// its input, so later mutation of the caller's slices cannot leak into a query.
//
// Errors:
//
//   - ErrOutOfRange        — Get/Point called with an id outside [0, N).
//   - ErrDimensionMismatch — Load received vectors of different lengths.
//   - ErrEmptyPoint        — Load received a zero-length vector.
//   - ErrMalformedLine     — Read could not parse a line (annotated with its number).
package pointstore
