package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/junction/edges"
	"github.com/katalvlaran/junction/kruskal"
	"github.com/katalvlaran/junction/pipeline"
	"github.com/katalvlaran/junction/pointstore"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flags struct {
	configPath string
	k          int
	completion bool
	metric     string
	workers    int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "junction [flags] <points-file>",
		Short: "Connect the closest point pairs and report component sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger, err := newLogger(f.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd, args[0], cfg, logger)
		},
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "TOML config file")
	fl.IntVarP(&f.k, "k", "k", 0, "report component sizes after the k closest pairs (omit to skip)")
	fl.BoolVar(&f.completion, "completion", true, "report the edge count that joins all points")
	fl.StringVar(&f.metric, "metric", "euclidean", "distance metric (euclidean, manhattan, chebyshev, minkowski)")
	fl.IntVar(&f.workers, "workers", 0, "goroutines for edge generation and sorting (0 = config or CPU count)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(cmd *cobra.Command, f flags) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = pipeline.LoadConfig(f.configPath); err != nil {
			return pipeline.Config{}, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("k") {
		cfg.SnapshotAfter = pipeline.SnapshotAt(f.k)
	}
	if fl.Changed("completion") {
		cfg.Completion = f.completion
	}
	if fl.Changed("metric") {
		cfg.Metric = f.metric
	}
	if fl.Changed("workers") && f.workers > 0 {
		cfg.Workers = f.workers
	}
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zc.Build()
}

func run(cmd *cobra.Command, path string, cfg pipeline.Config, logger *zap.Logger) error {
	fh, err := os.Open(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer fh.Close()

	store, err := pointstore.Read(fh)
	if err != nil {
		return err
	}
	logger.Info("points loaded", zap.String("path", path), zap.Int("points", store.Len()), zap.Int("dim", store.Dim()))

	rep, err := pipeline.Run(cmd.Context(), store, cfg, logger)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), store, rep)
	return nil
}

func printReport(w io.Writer, store *pointstore.Store, rep kruskal.Report) {
	fmt.Fprintf(w, "points: %s, candidate edges: %s\n",
		humanize.Comma(int64(rep.Points)), humanize.Comma(int64(edges.Count(rep.Points))))

	if s := rep.Snapshot; s != nil {
		note := ""
		if s.Exhausted {
			note = " (all edges consumed)"
		}
		fmt.Fprintf(w, "after %s edges%s: %d components, largest three product %d, sum of squares %d\n",
			humanize.Comma(int64(s.Consumed)), note, s.Sizes.Count(), s.Sizes.ProductOfLargest(3), s.Sizes.SumOfSquares())
	}

	if c := rep.Completion; c != nil {
		fmt.Fprintf(w, "connected after %s edges (~%s distinct points touched)\n",
			humanize.Comma(int64(c.PrefixLength)), humanize.Comma(int64(c.DistinctPoints)))
		if c.Bridged {
			a, _ := store.Get(c.Edge.A)
			b, _ := store.Get(c.Edge.B)
			fmt.Fprintf(w, "last edge: %d %v - %d %v, length %g\n", c.Edge.A, a, c.Edge.B, b, c.Edge.Weight)
		}
	}
}
