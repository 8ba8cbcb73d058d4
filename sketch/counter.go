package sketch

// Counter estimates how many distinct ids were added.
type Counter interface {
	// Add records one observation of id.
	Add(id int)
	// Estimate returns the current distinct-count estimate. It never decreases.
	Estimate() uint64
}

// Defaults for New.
const (
	DefaultExactThreshold = 1 << 16
	DefaultMaxSize        = 10000
)

// Options tunes counter selection.
type Options struct {
	// ExactThreshold is the largest N for which New returns an Exact counter.
	ExactThreshold int
	// MaxSize bounds the FMSketch hash set.
	MaxSize int
}

// Option mutates Options.
type Option func(*Options)

// WithExactThreshold sets the largest N counted exactly. Negative forces the sketch.
func WithExactThreshold(n int) Option {
	return func(o *Options) {
		o.ExactThreshold = n
	}
}

// WithMaxSize sets the sketch capacity; values < 1 keep the default.
func WithMaxSize(size int) Option {
	return func(o *Options) {
		if size >= 1 {
			o.MaxSize = size
		}
	}
}

// DefaultOptions returns DefaultExactThreshold and DefaultMaxSize.
func DefaultOptions() Options {
	return Options{ExactThreshold: DefaultExactThreshold, MaxSize: DefaultMaxSize}
}

// New returns a Counter for ids in [0, n).
func New(n int, opts ...Option) Counter {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if n <= o.ExactThreshold {
		return NewExact(n)
	}
	return NewFMSketch(o.MaxSize)
}
