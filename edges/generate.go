package edges

import (
	"context"

	"github.com/katalvlaran/junction/metric"
	"github.com/katalvlaran/junction/pointstore"
	"github.com/pingcap/errors"
	"golang.org/x/sync/errgroup"
)

// Generate materializes all N·(N−1)/2 edges in (i, j) order.
//
// Rows are split into contiguous ranges, one per worker. Row i owns the slots
// [rowOffset(i), rowOffset(i+1)), so workers never write the same index and the
// result is identical to the sequential loop. ctx is checked between rows.
//
// Steps:
//  1. Allocate the full N·(N−1)/2 result slice.
//  2. With one worker (or N <= 1), fill every row in place.
//  3. Otherwise cut rows into ranges of near-equal edge count and fill each
//     range in its own errgroup goroutine.
//
// Error Conditions:
//   - ctx.Err() (traced) : cancellation observed between rows; partial output is discarded.
//
// Complexity:
//
//	Time:   O(N²·D) metric evaluations for dimension D, divided across workers.
//	Memory: O(N²) for the edge slice.
func Generate(ctx context.Context, store *pointstore.Store, m metric.Metric, opts ...Option) ([]Edge, error) {
	o := buildOptions(opts)
	n := store.Len()
	out := make([]Edge, Count(n))

	fill := func(ctx context.Context, start, end int) error {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return errors.Trace(err)
			}
			pi := store.At(i)
			k := rowOffset(i, n)
			for j := i + 1; j < n; j++ {
				out[k] = Edge{A: i, B: j, Weight: m.Distance(pi, store.At(j))}
				k++
			}
		}
		return nil
	}

	if o.Workers <= 1 || n <= 1 {
		if err := fill(ctx, 0, n); err != nil {
			return nil, err
		}
		return out, nil
	}

	// Row i holds n-1-i edges, so equal row counts would overload the first
	// worker. Split on edge offsets instead.
	bounds := balancedRows(n, o.Workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w+1 < len(bounds); w++ {
		start, end := bounds[w], bounds[w+1]
		g.Go(func() error { return fill(gctx, start, end) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// balancedRows returns row boundaries [0, ..., n] giving each worker roughly
// the same number of edges.
func balancedRows(n, workers int) []int {
	total := Count(n)
	per := (total + workers - 1) / workers
	bounds := []int{0}
	next := per
	for i := 1; i < n; i++ {
		if rowOffset(i, n) >= next {
			bounds = append(bounds, i)
			next += per
		}
	}
	return append(bounds, n)
}
