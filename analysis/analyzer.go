package analysis

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/hupe1980/searchbench/bench"
	"github.com/hupe1980/searchbench/dataset"
)

// Analyzer runs the benchmark phases against fixtures served by a Loader.
type Analyzer struct {
	loader  *dataset.Loader
	cfg     Config
	clock   bench.Clock
	rng     *rand.Rand
	logger  *slog.Logger
	metrics MetricsCollector
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger for phase progress. Nothing is logged inside a
// timed region.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithClock replaces the system clock, typically with a fake in tests.
func WithClock(clock bench.Clock) Option {
	return func(a *Analyzer) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithSeed seeds the shuffle of comparison batches. Zero keeps the
// time-based default.
func WithSeed(seed int64) Option {
	return func(a *Analyzer) {
		if seed != 0 {
			a.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithMetrics sets the collector notified after each result.
func WithMetrics(mc MetricsCollector) Option {
	return func(a *Analyzer) {
		if mc != nil {
			a.metrics = mc
		}
	}
}

// NewAnalyzer validates cfg and returns an Analyzer reading through loader.
func NewAnalyzer(loader *dataset.Loader, cfg Config, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{
		loader:  loader,
		cfg:     cfg,
		clock:   bench.SystemClock{},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  slog.New(slog.DiscardHandler),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}
