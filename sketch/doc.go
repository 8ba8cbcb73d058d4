// Package sketch counts distinct point ids seen in a stream.
//
// Two Counter implementations are provided:
//
//   - Exact    — a bitset over [0, N); exact, N/8 bytes of memory.
//   - FMSketch — a Flajolet–Martin style sketch: ids are hashed with murmur3 and
//     only hashes whose low bits under a growing mask are zero are retained, in a
//     set bounded by MaxSize. The estimate is (mask+1)·|set|.
//
// Error bound: the sketch is exact until more than MaxSize distinct ids were added.
// Past that its relative standard error is about 1/√MaxSize (≈1% at the default
// 10 000); junction documents and tests a 5% bound.
//
// Both counters ignore repeats exactly (re-adding an id never changes the estimate)
// and their Estimate never decreases.
//
// New picks Exact when N is at most the configured threshold and FMSketch otherwise.
package sketch
