package analysis

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives the results of each phase as they are produced.
// Implement this interface to export results to a monitoring system; the
// metrics package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordCheck is called once per correctness scenario.
	RecordCheck(result CheckResult)

	// RecordReport is called after each dataset of the comparison phase.
	RecordReport(report Report)

	// RecordBreakEven is called after the break-even phase.
	RecordBreakEven(report BreakEvenReport)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCheck(CheckResult)         {}
func (NoopMetricsCollector) RecordReport(Report)             {}
func (NoopMetricsCollector) RecordBreakEven(BreakEvenReport) {}

// BasicMetricsCollector provides simple in-memory counters.
type BasicMetricsCollector struct {
	CheckCount        atomic.Int64
	CheckFailures     atomic.Int64
	ReportCount       atomic.Int64
	LinearTotalNanos  atomic.Int64
	BinaryTotalNanos  atomic.Int64
	SortTotalNanos    atomic.Int64
	BreakEvenCount    atomic.Int64
	BreakEvenSearches atomic.Int64
}

// RecordCheck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCheck(result CheckResult) {
	b.CheckCount.Add(1)
	if !result.Passed() {
		b.CheckFailures.Add(1)
	}
}

// RecordReport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReport(report Report) {
	b.ReportCount.Add(1)
	b.LinearTotalNanos.Add(report.Linear.Nanoseconds())
	b.BinaryTotalNanos.Add(report.BinaryIterative.Nanoseconds())
	b.SortTotalNanos.Add(report.SortCost.Nanoseconds())
}

// RecordBreakEven implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBreakEven(report BreakEvenReport) {
	b.BreakEvenCount.Add(1)
	if report.HasBreakEven {
		b.BreakEvenSearches.Store(report.Searches)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CheckCount:        b.CheckCount.Load(),
		CheckFailures:     b.CheckFailures.Load(),
		ReportCount:       b.ReportCount.Load(),
		LinearAvg:         b.avg(&b.LinearTotalNanos),
		BinaryAvg:         b.avg(&b.BinaryTotalNanos),
		SortTotal:         time.Duration(b.SortTotalNanos.Load()),
		BreakEvenCount:    b.BreakEvenCount.Load(),
		BreakEvenSearches: b.BreakEvenSearches.Load(),
	}
}

func (b *BasicMetricsCollector) avg(total *atomic.Int64) time.Duration {
	count := b.ReportCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(total.Load() / count)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
// LinearAvg and BinaryAvg average the per-search times across datasets.
type BasicMetricsStats struct {
	CheckCount        int64
	CheckFailures     int64
	ReportCount       int64
	LinearAvg         time.Duration
	BinaryAvg         time.Duration
	SortTotal         time.Duration
	BreakEvenCount    int64
	BreakEvenSearches int64
}
