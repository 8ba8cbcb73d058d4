package kruskal

import (
	"iter"

	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/edges"
	"github.com/katalvlaran/junction/sketch"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Driver folds an ordered edge stream into a forest. Not safe for concurrent use.
type Driver struct {
	opts    Options
	n       int
	forest  *dsu.Forest
	counter sketch.Counter
	log     *zap.Logger

	state      State
	snapshot   *Snapshot
	completion *Completion
	err        error
}

// New validates the query and returns a driver over n points. A K = 0 snapshot
// and the N <= 1 completion are answered immediately.
func New(n int, opts ...Option) (*Driver, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.WantSnapshot && o.SnapshotAfter < 0 {
		return nil, errors.Annotatef(ErrDegenerateQuery, "k=%d", o.SnapshotAfter)
	}
	if !o.WantSnapshot && !o.WantCompletion {
		return nil, ErrNoQuery
	}
	n = max(n, 0)

	d := &Driver{
		opts:    o,
		n:       n,
		forest:  dsu.New(n),
		counter: o.Counter,
		log:     o.Logger,
	}
	if d.counter == nil {
		d.counter = sketch.New(n)
	}
	if d.log == nil {
		d.log = zap.NewNop()
	}
	d.state.ComponentCount = n

	if o.WantSnapshot && o.SnapshotAfter == 0 {
		d.takeSnapshot(false)
	}
	if o.WantCompletion && n <= 1 {
		d.completion = &Completion{}
		d.log.Debug("points connected before any edge", zap.Int("points", n))
	}
	return d, nil
}

// Done reports whether every requested answer is available.
func (d *Driver) Done() bool {
	return (!d.opts.WantSnapshot || d.snapshot != nil) &&
		(!d.opts.WantCompletion || d.completion != nil)
}

// State returns the running counters.
func (d *Driver) State() State { return d.state }

// Consume applies one edge and reports whether the driver is done. Edges fed
// after Done are ignored. After an ErrInvalidEdge the driver is poisoned and
// keeps returning that error.
//
// Steps:
//  1. Validate endpoints before touching any state.
//  2. Record both endpoints in the distinct-point counter.
//  3. Union the endpoints in the forest.
//  4. Count the edge, merged or redundant.
//  5. Take the snapshot when the count reaches K.
//  6. Record the completion on the merge that leaves one component.
//
// Error Conditions:
//   - ErrInvalidEdge : an endpoint outside [0, N) or a self-loop; sticky for later calls.
//
// Complexity:
//
//	Time:   O(α(N)) amortized, plus O(N) once for the snapshot's sizes.
//	Memory: O(1) per edge; O(N) for the snapshot.
func (d *Driver) Consume(e edges.Edge) (bool, error) {
	if d.err != nil {
		return true, d.err
	}
	if d.Done() {
		return true, nil
	}

	// 1. Validate endpoints before touching any state.
	if !d.forest.Valid(e.A) || !d.forest.Valid(e.B) || e.A == e.B {
		d.err = errors.Annotatef(ErrInvalidEdge, "edge %s at position %d, n=%d", e, d.state.EdgesConsumed+1, d.n)
		return true, d.err
	}

	// 2. Distinct endpoints seen so far.
	d.counter.Add(e.A)
	d.counter.Add(e.B)
	d.state.DistinctPoints = d.counter.Estimate()

	// 3. Merge.
	merged := d.forest.Union(e.A, e.B)
	// 4. Count.
	d.state.EdgesConsumed++
	d.state.ComponentCount = d.forest.ComponentCount()

	// 5. Snapshot at exactly K edges.
	if d.opts.WantSnapshot && d.snapshot == nil && d.state.EdgesConsumed == d.opts.SnapshotAfter {
		d.takeSnapshot(false)
	}

	// 6. First moment a single component remains.
	if d.opts.WantCompletion && d.completion == nil && merged && d.state.ComponentCount == 1 {
		d.completion = &Completion{
			PrefixLength:   d.state.EdgesConsumed,
			Edge:           e,
			Bridged:        true,
			DistinctPoints: d.state.DistinctPoints,
		}
		d.log.Debug("points connected",
			zap.Int("prefix", d.state.EdgesConsumed),
			zap.Stringer("edge", e),
			zap.Uint64("distinct", d.state.DistinctPoints))
	}

	return d.Done(), nil
}

// Report finalizes the run at end of stream. A pending snapshot is taken now and
// marked Exhausted. A missing completion yields ErrNeverConnected.
func (d *Driver) Report() (Report, error) {
	if d.err != nil {
		return Report{}, d.err
	}
	if d.opts.WantSnapshot && d.snapshot == nil {
		d.log.Warn("edge stream shorter than snapshot request",
			zap.Int("requested", d.opts.SnapshotAfter),
			zap.Int("consumed", d.state.EdgesConsumed))
		d.takeSnapshot(true)
	}
	if d.opts.WantCompletion && d.completion == nil {
		return Report{}, errors.Annotatef(ErrNeverConnected, "%d components after %d edges",
			d.state.ComponentCount, d.state.EdgesConsumed)
	}
	return Report{
		Points:     d.n,
		Final:      d.state,
		Snapshot:   d.snapshot,
		Completion: d.completion,
	}, nil
}

func (d *Driver) takeSnapshot(exhausted bool) {
	d.snapshot = &Snapshot{
		After:          d.opts.SnapshotAfter,
		Consumed:       d.state.EdgesConsumed,
		Exhausted:      exhausted,
		Sizes:          d.forest.Sizes(),
		DistinctPoints: d.state.DistinctPoints,
	}
	d.log.Debug("snapshot taken",
		zap.Int("after", d.opts.SnapshotAfter),
		zap.Int("consumed", d.state.EdgesConsumed),
		zap.Int("components", d.state.ComponentCount),
		zap.Bool("exhausted", exhausted))
}

// Run folds seq into a fresh driver over n points and returns its report.
// It stops pulling from seq as soon as every requested answer exists.
// Complexity: O(P·α(N)) for the P edges pulled.
func Run(seq iter.Seq[edges.Edge], n int, opts ...Option) (Report, error) {
	d, err := New(n, opts...)
	if err != nil {
		return Report{}, err
	}
	if !d.Done() {
		for e := range seq {
			done, err := d.Consume(e)
			if err != nil {
				return Report{}, err
			}
			if done {
				break
			}
		}
	}
	return d.Report()
}
