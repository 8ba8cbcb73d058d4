package edges

import "runtime"

// Options configures edge generation and parallel sorting.
type Options struct {
	// Workers is the number of goroutines; values <= 1 run sequentially.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the worker count. Zero or negative selects sequential execution.
func WithWorkers(w int) Option {
	return func(o *Options) {
		o.Workers = w
	}
}

// DefaultOptions uses one worker per available CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
