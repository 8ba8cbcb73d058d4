package edges_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/junction/edges"
	"github.com/katalvlaran/junction/metric"
)

// BenchmarkGenerate measures materializing all pairs of 1000 points.
func BenchmarkGenerate(b *testing.B) {
	s := randomStore(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = edges.Generate(context.Background(), s, metric.Euclidean{})
	}
}

// BenchmarkSmallest measures selecting 1000 edges out of ~500k.
func BenchmarkSmallest(b *testing.B) {
	all, _ := edges.Generate(context.Background(), randomStore(b, 1000), metric.Euclidean{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = edges.Smallest(all, 1000)
	}
}

// BenchmarkSortParallel measures the sort-and-merge path end to end.
func BenchmarkSortParallel(b *testing.B) {
	all, _ := edges.Generate(context.Background(), randomStore(b, 1000), metric.Euclidean{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, _ := edges.SortParallel(context.Background(), all)
		for range seq {
		}
	}
}
