package searchbench

import (
	"context"
	"errors"
	"io"

	"github.com/hupe1980/searchbench/analysis"
	"github.com/hupe1980/searchbench/blobstore"
	"github.com/hupe1980/searchbench/dataset"
)

// Result is everything a full run produced.
type Result = analysis.Result

// Run executes the correctness, comparison and break-even phases and writes
// the console report to w. A store must be configured with WithStore or
// WithDataDir. The first load error aborts the run.
func Run(ctx context.Context, w io.Writer, optFns ...Option) (*Result, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if o.store == nil {
		return nil, ErrNoStore
	}

	a, err := newAnalyzer(o)
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "benchmark started",
		"datasets", len(o.config.Datasets),
		"codec", o.codec.Name(),
	)

	res, err := a.Run(ctx, w)
	if err != nil {
		logFailure(ctx, o.logger, err)
		return nil, err
	}

	o.logger.LogChecks(ctx, res.Checks)
	for _, r := range res.Reports {
		o.logger.LogBenchmark(ctx, r)
	}
	o.logger.LogBreakEven(ctx, res.BreakEven)

	return res, nil
}

// Check runs only the correctness phase and writes it to w. It needs no
// fixtures. Failing scenarios are reported as *ErrChecksFailed alongside the
// results.
func Check(ctx context.Context, w io.Writer, optFns ...Option) ([]analysis.CheckResult, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if o.store == nil {
		o.store = blobstore.NewMemoryStore()
	}

	a, err := newAnalyzer(o)
	if err != nil {
		return nil, err
	}

	results, err := a.Check(ctx, w)
	if err != nil {
		return nil, err
	}
	o.logger.LogChecks(ctx, results)

	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
		}
	}
	if failed > 0 {
		return results, &ErrChecksFailed{Failed: failed, Total: len(results)}
	}
	return results, nil
}

// Generate writes the fixture set described by cfg to w. The codec and
// logger options apply; cfg values take precedence when set.
func Generate(ctx context.Context, w blobstore.Writer, cfg dataset.GenerateConfig, optFns ...Option) ([]string, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if cfg.Codec == nil {
		cfg.Codec = o.codec
	}
	if cfg.Logger == nil {
		cfg.Logger = o.logger.Logger
	}

	names, err := dataset.Generate(ctx, w, cfg)
	if err != nil {
		return nil, err
	}
	o.logger.InfoContext(ctx, "fixtures generated",
		"count", len(names),
		"seed", cfg.Seed,
		"compression", string(cfg.Compression),
	)
	return names, nil
}

func newAnalyzer(o options) (*analysis.Analyzer, error) {
	loader := dataset.NewLoader(o.store,
		dataset.WithCodec(o.codec),
		dataset.WithLogger(o.logger.Logger),
		dataset.WithTestCasesFile(o.config.TestCasesFile),
	)
	return analysis.NewAnalyzer(loader, o.config,
		analysis.WithLogger(o.logger.Logger),
		analysis.WithClock(o.clock),
		analysis.WithSeed(o.seed),
		analysis.WithMetrics(o.metricsCollector),
	)
}

func logFailure(ctx context.Context, l *Logger, err error) {
	var loadErr *dataset.LoadError
	if errors.As(err, &loadErr) {
		l.LogLoad(ctx, loadErr.File, err)
		return
	}
	var decodeErr *dataset.DecodeError
	if errors.As(err, &decodeErr) {
		l.LogLoad(ctx, decodeErr.File, err)
		return
	}
	l.ErrorContext(ctx, "benchmark failed", "error", err)
}
