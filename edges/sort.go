package edges

import (
	"context"
	"iter"
	"slices"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/pingcap/errors"
	"github.com/wangjohn/quickselect"
	"golang.org/x/sync/errgroup"
)

// byWeight implements quickselect.Interface in the total edge order.
type byWeight []Edge

func (s byWeight) Len() int           { return len(s) }
func (s byWeight) Less(i, j int) bool { return Less(s[i], s[j]) }
func (s byWeight) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Smallest returns the k smallest edges of es in sorted order without sorting
// the remainder. The result equals SortedByWeight(es)[:k] (k clamped to len(es));
// k <= 0 yields an empty slice. es is not modified.
//
// Steps:
//  1. Handle k <= 0 and k >= len(es) directly.
//  2. Quickselect a clone so its first k entries are the k smallest.
//  3. Sort only that prefix in the total edge order.
//
// Complexity:
//
//	Time:   O(E + k·log k) expected for E = len(es).
//	Memory: O(E) for the clone.
func Smallest(es []Edge, k int) []Edge {
	if k <= 0 || len(es) == 0 {
		return []Edge{}
	}
	if k >= len(es) {
		return SortedByWeight(es)
	}

	work := slices.Clone(es)
	// QuickSelect only fails for k outside [1, len]; both are excluded above.
	if err := quickselect.QuickSelect(byWeight(work), k); err != nil {
		return SortedByWeight(es)[:k]
	}
	prefix := work[:k:k]
	slices.SortFunc(prefix, Compare)
	return prefix
}

// cursor is a heap entry: the head of one sorted run.
type cursor struct {
	edge Edge
	run  int
	pos  int
}

func cursorComparator(a, b interface{}) int {
	return Compare(a.(cursor).edge, b.(cursor).edge)
}

// SortParallel sorts es in the total edge order using Options.Workers sorted
// runs built concurrently, and returns a sequence streaming their k-way merge.
// es is not modified. The merged sequence is identical to SortedByWeight(es).
//
// Steps:
//  1. Fall back to SortedByWeight for one worker or tiny inputs.
//  2. Split a clone into Workers contiguous runs.
//  3. Sort every run concurrently under an errgroup.
//  4. Return MergeSorted over the runs; merging happens lazily while iterating.
//
// Error Conditions:
//   - ctx.Err() (traced) : cancellation observed before a run starts sorting.
//
// Complexity:
//
//	Time:   O((E/W)·log(E/W)) per worker, then O(E·log W) to drain the merge.
//	Memory: O(E) for the runs plus O(W) heap entries.
func SortParallel(ctx context.Context, es []Edge, opts ...Option) (iter.Seq[Edge], error) {
	o := buildOptions(opts)
	if o.Workers <= 1 || len(es) < 2*o.Workers {
		return Seq(SortedByWeight(es)), nil
	}

	runs := splitRuns(slices.Clone(es), o.Workers)
	g, gctx := errgroup.WithContext(ctx)
	for _, run := range runs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Trace(err)
			}
			slices.SortFunc(run, Compare)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return MergeSorted(runs...), nil
}

// MergeSorted streams the merge of already-sorted runs through a binary heap
// holding one head per run. Memory beyond the runs is O(len(runs)).
// Complexity: O(E·log R) to drain E edges from R runs.
func MergeSorted(runs ...[]Edge) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		h := binaryheap.NewWith(cursorComparator)
		for r, run := range runs {
			if len(run) > 0 {
				h.Push(cursor{edge: run[0], run: r, pos: 0})
			}
		}
		for !h.Empty() {
			v, _ := h.Pop()
			c := v.(cursor)
			if !yield(c.edge) {
				return
			}
			if next := c.pos + 1; next < len(runs[c.run]) {
				h.Push(cursor{edge: runs[c.run][next], run: c.run, pos: next})
			}
		}
	}
}

// splitRuns cuts es into at most parts contiguous, near-equal sub-slices.
func splitRuns(es []Edge, parts int) [][]Edge {
	size := (len(es) + parts - 1) / parts
	runs := make([][]Edge, 0, parts)
	for start := 0; start < len(es); start += size {
		end := min(start+size, len(es))
		runs = append(runs, es[start:end:end])
	}
	return runs
}
