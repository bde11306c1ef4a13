package searchbench

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hupe1980/searchbench/analysis"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("LogBenchmark", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(newTestHandler(&buf))
		l.LogBenchmark(ctx, analysis.Report{Dataset: "customer_ids", Size: 100, Linear: time.Millisecond})

		out := buf.String()
		assert.Contains(t, out, "benchmark completed")
		assert.Contains(t, out, "dataset=customer_ids")
		assert.Contains(t, out, "size=100")
		assert.Contains(t, out, "linear=1ms")
	})

	t.Run("LogBreakEven", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(newTestHandler(&buf))
		l.LogBreakEven(ctx, analysis.BreakEvenReport{Dataset: "customer_ids", Searches: 11, HasBreakEven: true})
		assert.Contains(t, buf.String(), "break-even point found")
		assert.Contains(t, buf.String(), "searches=11")

		buf.Reset()
		l.LogBreakEven(ctx, analysis.BreakEvenReport{Dataset: "customer_ids"})
		assert.Contains(t, buf.String(), "no break-even point")
	})

	t.Run("LogChecks", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(newTestHandler(&buf))
		l.LogChecks(ctx, analysis.CheckCorrectness())
		assert.Contains(t, buf.String(), "correctness checks passed")

		buf.Reset()
		l.LogChecks(ctx, []analysis.CheckResult{{Expected: 1, Got: 0}})
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "failed=1")
	})

	t.Run("LogLoad", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(newTestHandler(&buf))
		l.LogLoad(ctx, "customer_ids.json", nil)
		assert.Contains(t, buf.String(), "load completed")

		buf.Reset()
		l.LogLoad(ctx, "customer_ids.json", errors.New("boom"))
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "error=boom")
	})

	t.Run("NoopLogger", func(t *testing.T) {
		l := NoopLogger()
		assert.False(t, l.Enabled(ctx, slog.LevelError))
		l.LogLoad(ctx, "x", errors.New("ignored"))
	})

	t.Run("Constructors", func(t *testing.T) {
		assert.NotNil(t, NewLogger(nil))
		assert.True(t, NewJSONLogger(slog.LevelDebug).Enabled(ctx, slog.LevelDebug))
		assert.False(t, NewTextLogger(slog.LevelWarn).Enabled(ctx, slog.LevelInfo))
	})
}
