package kruskal

import (
	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/edges"
	"github.com/katalvlaran/junction/sketch"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Sentinel errors for merge driving.
var (
	// ErrDegenerateQuery indicates a negative K for the snapshot query.
	ErrDegenerateQuery = errors.New("kruskal: snapshot edge count must not be negative")
	// ErrNoQuery indicates that neither a snapshot nor the completion was requested.
	ErrNoQuery = errors.New("kruskal: no query requested")
	// ErrInvalidEdge indicates an edge referencing unknown point ids or a self-loop.
	ErrInvalidEdge = errors.New("kruskal: invalid edge")
	// ErrNeverConnected indicates the stream ended before one component remained.
	ErrNeverConnected = errors.New("kruskal: edge stream ended before all points were connected")
)

// State is the running accumulator of the driver.
type State struct {
	EdgesConsumed  int
	ComponentCount int
	DistinctPoints uint64
}

// Snapshot is the partition after the first After edges.
type Snapshot struct {
	// After is the requested K.
	After int
	// Consumed is the number of edges actually applied; less than After when Exhausted.
	Consumed int
	// Exhausted reports that the stream ended before K edges.
	Exhausted bool
	// Sizes is the multiset of component sizes, largest first.
	Sizes dsu.Sizes
	// DistinctPoints is the counter estimate at snapshot time.
	DistinctPoints uint64
}

// Completion describes the shortest prefix leaving a single component.
type Completion struct {
	// PrefixLength is the number of edges consumed when one component remained.
	PrefixLength int
	// Edge is the edge whose union left one component; zero when Bridged is false.
	Edge edges.Edge
	// Bridged is false when the points were connected from the start (N <= 1).
	Bridged bool
	// DistinctPoints is the counter estimate at completion.
	DistinctPoints uint64
}

// Report is the outcome of a run. Snapshot and Completion are nil unless requested.
type Report struct {
	Points     int
	Final      State
	Snapshot   *Snapshot
	Completion *Completion
}

// Options configures a Driver.
type Options struct {
	// SnapshotAfter is K; only used when WantSnapshot is set.
	SnapshotAfter int
	// WantSnapshot requests the snapshot query.
	WantSnapshot bool
	// WantCompletion requests the completion query.
	WantCompletion bool
	// Counter tracks distinct points; nil selects sketch.New(n).
	Counter sketch.Counter
	// Logger receives debug events; nil selects zap.NewNop().
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithSnapshotAfter requests component sizes after k edges.
func WithSnapshotAfter(k int) Option {
	return func(o *Options) {
		o.SnapshotAfter = k
		o.WantSnapshot = true
	}
}

// WithCompletion requests the single-component prefix length.
func WithCompletion() Option {
	return func(o *Options) {
		o.WantCompletion = true
	}
}

// WithCounter injects the distinct-point counter.
func WithCounter(c sketch.Counter) Option {
	return func(o *Options) {
		o.Counter = c
	}
}

// WithLogger injects a zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions requests nothing; at least one query option must be added.
func DefaultOptions() Options {
	return Options{}
}
