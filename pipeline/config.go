package pipeline

import (
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/junction/kruskal"
	"github.com/katalvlaran/junction/metric"
	"github.com/katalvlaran/junction/sketch"
	"github.com/pingcap/errors"
)

// ErrInvalidConfig indicates a Config that cannot describe a query.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Selection strategies for ordering edges.
const (
	SelectionAuto    = "auto"
	SelectionFull    = "full"
	SelectionPartial = "partial"
)

// Config describes one query.
type Config struct {
	// Metric names the distance function (see metric.ByName).
	Metric string `toml:"metric"`
	// MinkowskiP is the exponent when Metric is "minkowski".
	MinkowskiP float64 `toml:"minkowski_p"`
	// Workers bounds generation and sorting goroutines; <= 1 runs sequentially.
	Workers int `toml:"workers"`
	// SnapshotAfter is K for the snapshot query; nil (key absent) disables it.
	SnapshotAfter *int `toml:"snapshot_after"`
	// Completion requests the single-component prefix length.
	Completion bool `toml:"completion"`
	// Selection is one of SelectionAuto, SelectionFull, SelectionPartial.
	Selection string `toml:"selection"`
	// ExactThreshold is the largest N whose distinct points are counted exactly.
	ExactThreshold int `toml:"exact_threshold"`
	// SketchSize bounds the distinct-point sketch.
	SketchSize int `toml:"sketch_size"`
}

// DefaultConfig requests only the completion, Euclidean metric, one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Metric:         metric.NameEuclidean,
		MinkowskiP:     2,
		Workers:        runtime.GOMAXPROCS(0),
		Completion:     true,
		Selection:      SelectionAuto,
		ExactThreshold: sketch.DefaultExactThreshold,
		SketchSize:     sketch.DefaultMaxSize,
	}
}

// LoadConfig decodes a TOML file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Annotatef(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Annotatef(ErrInvalidConfig, "unknown keys %v in %s", undecoded, path)
	}
	return cfg, cfg.Validate()
}

// SnapshotAt returns a SnapshotAfter value requesting the snapshot after k edges.
func SnapshotAt(k int) *int { return &k }

// WantSnapshot reports whether the snapshot query is requested.
func (c Config) WantSnapshot() bool { return c.SnapshotAfter != nil }

// Validate checks that the config names a query and known strategies.
//
// Error Conditions:
//   - kruskal.ErrDegenerateQuery : snapshot_after is present and negative.
//   - ErrInvalidConfig           : no query, unknown selection or unknown metric.
func (c Config) Validate() error {
	if c.SnapshotAfter != nil && *c.SnapshotAfter < 0 {
		return errors.Annotatef(kruskal.ErrDegenerateQuery, "snapshot_after=%d", *c.SnapshotAfter)
	}
	if !c.WantSnapshot() && !c.Completion {
		return errors.Annotatef(ErrInvalidConfig, "neither snapshot_after nor completion set")
	}
	switch c.Selection {
	case "", SelectionAuto, SelectionFull, SelectionPartial:
	default:
		return errors.Annotatef(ErrInvalidConfig, "selection %q", c.Selection)
	}
	if _, err := c.metric(); err != nil {
		return errors.Annotatef(ErrInvalidConfig, "%v", err)
	}
	return nil
}

func (c Config) metric() (metric.Metric, error) {
	return metric.ByName(c.Metric, c.MinkowskiP)
}
