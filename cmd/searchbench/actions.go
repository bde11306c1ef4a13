package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hupe1980/searchbench"
	"github.com/hupe1980/searchbench/analysis"
	"github.com/hupe1980/searchbench/blobstore"
	"github.com/hupe1980/searchbench/codec"
	"github.com/hupe1980/searchbench/dataset"
	"github.com/hupe1980/searchbench/metrics"
	"github.com/spf13/cobra"
)

func newLogger() (*searchbench.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	var logger *searchbench.Logger
	switch strings.ToLower(logFormat) {
	case "text":
		logger = searchbench.NewTextLogger(level)
	case "json":
		logger = searchbench.NewJSONLogger(level)
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", logFormat)
	}
	slog.SetDefault(logger.Logger)
	return logger, nil
}

func selectCodec() (codec.Codec, error) {
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("unknown --codec %q: want one of %s", codecName, strings.Join(codec.Names(), ", "))
	}
	return c, nil
}

func commonOptions() ([]searchbench.Option, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	c, err := selectCodec()
	if err != nil {
		return nil, err
	}
	return []searchbench.Option{
		searchbench.WithLogger(logger),
		searchbench.WithCodec(c),
	}, nil
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	opts, err := commonOptions()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := openStore(ctx, dataURI)
	if err != nil {
		return err
	}
	opts = append(opts, searchbench.WithStore(store), searchbench.WithSeed(seed))

	if configPath != "" {
		cfg, err := analysis.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configPath, err)
		}
		opts = append(opts, searchbench.WithConfig(cfg))
	}

	var collector *metrics.PrometheusCollector
	if metricsOut != "" {
		collector = metrics.NewPrometheusCollector()
		opts = append(opts, searchbench.WithMetricsCollector(collector))
	}

	if _, err := searchbench.Run(ctx, cmd.OutOrStdout(), opts...); err != nil {
		return err
	}

	if collector != nil {
		if err := collector.WriteTextfile(metricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func runCheck(cmd *cobra.Command, _ []string) error {
	opts, err := commonOptions()
	if err != nil {
		return err
	}
	_, err = searchbench.Check(cmd.Context(), cmd.OutOrStdout(), opts...)
	return err
}

// existingFixtures returns the names cfg would write that are already in store.
func existingFixtures(ctx context.Context, store blobstore.Store, cfg dataset.GenerateConfig) ([]string, error) {
	names, err := store.List(ctx, "")
	if errors.Is(err, blobstore.ErrNotListable) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	want := map[string]bool{cfg.TestCasesFile: true}
	for _, spec := range cfg.Fixtures {
		want[spec.File+cfg.Compression.Suffix()] = true
	}

	var existing []string
	for _, name := range names {
		if want[name] {
			existing = append(existing, name)
		}
	}
	return existing, nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts, err := commonOptions()
	if err != nil {
		return err
	}
	comp, err := dataset.ParseCompression(compression)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := openStore(ctx, outURI)
	if err != nil {
		return err
	}
	w, ok := store.(blobstore.Writer)
	if !ok {
		return errors.New("fixture destination is not writable")
	}

	cfg := dataset.DefaultGenerateConfig()
	cfg.Compression = comp
	cfg.Seed = genSeed
	cfg.Targets = genTargets

	if lister, ok := store.(blobstore.Store); ok && !force {
		existing, err := existingFixtures(ctx, lister, cfg)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return fmt.Errorf("fixtures already exist at %s: %s (use --force to overwrite)", outURI, strings.Join(existing, ", "))
		}
	}

	names, err := searchbench.Generate(ctx, w, cfg, opts...)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
