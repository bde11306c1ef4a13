package analysis

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	r := Report{
		Description:     "Unsorted Customer IDs (100K)",
		Linear:          1234567 * time.Nanosecond,
		Sorted:          true,
		SortCost:        12345678 * time.Nanosecond,
		BinaryIterative: 1500 * time.Nanosecond,
		BinaryRecursive: 2500 * time.Nanosecond,
		Speedup:         823.04,
		HasSpeedup:      true,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, r))

	want := "Dataset: Unsorted Customer IDs (100K)\n" +
		strings.Repeat("-", 70) + "\n" +
		"  Linear Search:              1.2346 ms per search\n" +
		"  Time to sort data:          12.35 ms (one-time cost)\n" +
		"  Binary Search (Iterative):  0.0015 ms per search\n" +
		"  Binary Search (Recursive):  0.0025 ms per search\n" +
		"  Binary speedup:             823.04x faster than linear\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReport_PresortedWithoutSpeedup(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, Report{Description: "Dictionary Words (10K)"}))

	out := buf.String()
	assert.NotContains(t, out, "Time to sort data")
	assert.NotContains(t, out, "speedup")
	assert.Contains(t, out, "  Binary Search (Iterative):  0.0000 ms per search\n")
}

func TestWriteChecks(t *testing.T) {
	results := []CheckResult{
		{Name: "Linear search on unsorted data", Algorithm: "linear", Data: []int{7, 2, 9}, Target: 9, Expected: 2, Got: 2},
		{Name: "Broken", Algorithm: "binary-iterative", Data: []int{1}, Target: 1, Expected: 0, Got: -1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteChecks(&buf, results))

	banner := strings.Repeat("=", 70)
	want := banner + "\nTESTING SEARCH CORRECTNESS\n" + banner + "\n\n" +
		"Test 1: Linear search on unsorted data\n" +
		"  linear([7, 2, 9], 9) = 2\n" +
		"  Expected: 2, Got: 2, ✓ PASS\n\n" +
		"Test 2: Broken\n" +
		"  binary-iterative([1], 1) = -1\n" +
		"  Expected: 0, Got: -1, ✗ FAIL\n\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteBreakEven(t *testing.T) {
	r := BreakEvenReport{
		Description:    "Customer IDs",
		Size:           100000,
		SortCost:       10 * time.Millisecond,
		Linear:         time.Millisecond,
		Binary:         100 * time.Microsecond,
		SavedPerSearch: 900 * time.Microsecond,
		Searches:       11,
		HasBreakEven:   true,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBreakEven(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "PREPROCESSING COST ANALYSIS")
	assert.Contains(t, out, "Dataset: Customer IDs (100,000 entries)\n")
	assert.Contains(t, out, "One-time sort cost: 10.00 ms\n")
	assert.Contains(t, out, "Linear search time: 1.0000 ms per search\n")
	assert.Contains(t, out, "Binary search time: 0.1000 ms per search\n")
	assert.Contains(t, out, "Time saved per search: 0.9000 ms\n")
	assert.Contains(t, out, "Break-even point: 11 searches\n")
	assert.Contains(t, out, "After 11 searches, sorting + binary search becomes faster\n")

	buf.Reset()
	r.HasBreakEven = false
	require.NoError(t, WriteBreakEven(&buf, r))
	assert.NotContains(t, buf.String(), "Break-even point")
}

func TestGroupThousands(t *testing.T) {
	for in, want := range map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		100000:  "100,000",
		1234567: "1,234,567",
		-4500:   "-4,500",
	} {
		assert.Equal(t, want, groupThousands(in))
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWrite_PropagatesWriterError(t *testing.T) {
	boom := errors.New("boom")
	w := failingWriter{err: boom}

	assert.ErrorIs(t, WriteChecks(w, CheckCorrectness()), boom)
	assert.ErrorIs(t, WriteReport(w, Report{}), boom)
	assert.ErrorIs(t, WriteBreakEven(w, BreakEvenReport{}), boom)
	assert.ErrorIs(t, WriteComparisonHeader(w), boom)
}
