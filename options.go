package searchbench

import (
	"github.com/hupe1980/searchbench/analysis"
	"github.com/hupe1980/searchbench/bench"
	"github.com/hupe1980/searchbench/blobstore"
	"github.com/hupe1980/searchbench/codec"
)

type options struct {
	store            blobstore.BlobStore
	codec            codec.Codec
	config           analysis.Config
	seed             int64
	clock            bench.Clock
	metricsCollector analysis.MetricsCollector
	logger           *Logger
}

// Option configures Run and Check.
type Option func(*options)

func defaultOptions() options {
	return options{
		codec:            codec.Default,
		config:           analysis.DefaultConfig(),
		clock:            bench.SystemClock{},
		metricsCollector: analysis.NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// WithStore sets the fixture source.
func WithStore(store blobstore.BlobStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithDataDir reads fixtures from a local directory.
func WithDataDir(dir string) Option {
	return func(o *options) {
		o.store = blobstore.NewLocalStore(dir)
	}
}

// WithCodec configures the codec used for decoding fixtures.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithConfig replaces the default dataset table and batch sizes.
func WithConfig(cfg analysis.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithSeed seeds the shuffle of comparison batches.
// Zero selects a time-based seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithClock replaces the system clock used for timing.
func WithClock(clock bench.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(mc analysis.MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metricsCollector = mc
		}
	}
}

// WithLogger sets a custom structured logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
