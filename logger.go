package searchbench

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/searchbench/analysis"
)

// Logger wraps slog.Logger with benchmark-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDataset adds a dataset field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// LogChecks logs the outcome of the correctness phase.
func (l *Logger) LogChecks(ctx context.Context, results []analysis.CheckResult) {
	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
		}
	}
	if failed > 0 {
		l.WarnContext(ctx, "correctness checks completed with failures",
			"total", len(results),
			"failed", failed,
		)
	} else {
		l.InfoContext(ctx, "correctness checks passed",
			"total", len(results),
		)
	}
}

// LogLoad logs a fixture load.
func (l *Logger) LogLoad(ctx context.Context, file string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"file", file,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "load completed",
			"file", file,
		)
	}
}

// LogBenchmark logs the comparison result for one dataset.
func (l *Logger) LogBenchmark(ctx context.Context, r analysis.Report) {
	l.WithDataset(r.Dataset).InfoContext(ctx, "benchmark completed",
		"size", r.Size,
		"batch", r.Batch,
		"linear", r.Linear,
		"binary_iterative", r.BinaryIterative,
		"binary_recursive", r.BinaryRecursive,
		"sort_cost", r.SortCost,
		"speedup", r.Speedup,
	)
}

// LogBreakEven logs the break-even result.
func (l *Logger) LogBreakEven(ctx context.Context, r analysis.BreakEvenReport) {
	logger := l.WithDataset(r.Dataset)
	if r.HasBreakEven {
		logger.InfoContext(ctx, "break-even point found",
			"searches", r.Searches,
			"sort_cost", r.SortCost,
			"saved_per_search", r.SavedPerSearch,
		)
	} else {
		logger.InfoContext(ctx, "no break-even point",
			"sort_cost", r.SortCost,
			"saved_per_search", r.SavedPerSearch,
		)
	}
}
