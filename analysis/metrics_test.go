package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var mc BasicMetricsCollector

	mc.RecordCheck(CheckResult{Expected: 1, Got: 1})
	mc.RecordCheck(CheckResult{Expected: 1, Got: 2})
	mc.RecordReport(Report{Linear: 4 * time.Millisecond, BinaryIterative: time.Millisecond, SortCost: time.Millisecond})
	mc.RecordReport(Report{Linear: 2 * time.Millisecond, BinaryIterative: 3 * time.Millisecond})
	mc.RecordBreakEven(BreakEvenReport{Searches: 42, HasBreakEven: true})

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.CheckCount)
	assert.Equal(t, int64(1), stats.CheckFailures)
	assert.Equal(t, int64(2), stats.ReportCount)
	assert.Equal(t, 3*time.Millisecond, stats.LinearAvg)
	assert.Equal(t, 2*time.Millisecond, stats.BinaryAvg)
	assert.Equal(t, time.Millisecond, stats.SortTotal)
	assert.Equal(t, int64(1), stats.BreakEvenCount)
	assert.Equal(t, int64(42), stats.BreakEvenSearches)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	var mc BasicMetricsCollector
	stats := mc.GetStats()
	assert.Zero(t, stats.LinearAvg)
	assert.Zero(t, stats.BinaryAvg)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordCheck(CheckResult{})
	mc.RecordReport(Report{})
	mc.RecordBreakEven(BreakEvenReport{})
}
