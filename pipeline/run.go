package pipeline

import (
	"context"
	"iter"

	"github.com/katalvlaran/junction/edges"
	"github.com/katalvlaran/junction/kruskal"
	"github.com/katalvlaran/junction/pointstore"
	"github.com/katalvlaran/junction/sketch"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Run answers the query described by cfg over store.
//
// Steps:
//  1. Validate cfg and build the driver, so a degenerate K fails before any edge exists.
//  2. Generate all pairs under the configured metric.
//  3. Order them: bounded selection for a snapshot-only query, parallel sort-merge otherwise.
//  4. Fold the ordered edges through the driver, stopping once every answer exists.
func Run(ctx context.Context, store *pointstore.Store, cfg Config, logger *zap.Logger) (kruskal.Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return kruskal.Report{}, err
	}
	m, err := cfg.metric()
	if err != nil {
		return kruskal.Report{}, errors.Trace(err)
	}

	// 1. Driver first: query validation happens before the O(N²) work.
	n := store.Len()
	opts := []kruskal.Option{
		kruskal.WithLogger(logger),
		kruskal.WithCounter(sketch.New(n,
			sketch.WithExactThreshold(cfg.ExactThreshold),
			sketch.WithMaxSize(cfg.SketchSize))),
	}
	if cfg.WantSnapshot() {
		opts = append(opts, kruskal.WithSnapshotAfter(*cfg.SnapshotAfter))
	}
	if cfg.Completion {
		opts = append(opts, kruskal.WithCompletion())
	}
	d, err := kruskal.New(n, opts...)
	if err != nil {
		return kruskal.Report{}, err
	}
	if d.Done() {
		return d.Report()
	}

	// 2. All pairs.
	all, err := edges.Generate(ctx, store, m, edges.WithWorkers(cfg.Workers))
	if err != nil {
		return kruskal.Report{}, err
	}
	logger.Debug("edges generated", zap.Int("points", n), zap.Int("edges", len(all)))

	// 3. Ordering.
	seq, err := order(ctx, all, cfg, logger)
	if err != nil {
		return kruskal.Report{}, err
	}

	// 4. Sequential fold.
	for e := range seq {
		done, err := d.Consume(e)
		if err != nil {
			return kruskal.Report{}, err
		}
		if done {
			break
		}
	}
	return d.Report()
}

func order(ctx context.Context, all []edges.Edge, cfg Config, logger *zap.Logger) (iter.Seq[edges.Edge], error) {
	partial := cfg.WantSnapshot() && !cfg.Completion && cfg.Selection != SelectionFull
	if partial {
		logger.Debug("ordering by bounded selection", zap.Int("k", *cfg.SnapshotAfter))
		return edges.Seq(edges.Smallest(all, *cfg.SnapshotAfter)), nil
	}
	if cfg.Selection == SelectionPartial {
		logger.Warn("partial selection cannot answer the completion query, sorting fully")
	}
	logger.Debug("ordering by parallel sort", zap.Int("workers", cfg.Workers))
	return edges.SortParallel(ctx, all, edges.WithWorkers(cfg.Workers))
}
