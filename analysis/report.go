package analysis

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const lineWidth = 70

var (
	banner = strings.Repeat("=", lineWidth)
	rule   = strings.Repeat("-", lineWidth)
)

// printer writes formatted lines and remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(title string) {
	p.printf("%s\n%s\n%s\n\n", banner, title, banner)
}

// ms formats d in milliseconds with the given number of decimals.
func ms(d time.Duration, decimals int) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', decimals, 64)
}

// groupThousands renders n with comma separators: 100000 becomes "100,000".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func passMark(ok bool) string {
	if ok {
		return "✓ PASS"
	}
	return "✗ FAIL"
}

// WriteChecks renders the correctness section.
func WriteChecks(w io.Writer, results []CheckResult) error {
	p := &printer{w: w}
	p.section("TESTING SEARCH CORRECTNESS")
	for i, r := range results {
		p.printf("Test %d: %s\n", i+1, r.Name)
		p.printf("  %s = %d\n", r.Call(), r.Got)
		p.printf("  Expected: %d, Got: %d, %s\n\n", r.Expected, r.Got, passMark(r.Passed()))
	}
	return p.err
}

// WriteComparisonHeader renders the banner that opens the comparison section.
func WriteComparisonHeader(w io.Writer) error {
	p := &printer{w: w}
	p.printf("\n")
	p.section("BENCHMARKING SEARCH ALGORITHMS")
	return p.err
}

// WriteReport renders one dataset block of the comparison section.
func WriteReport(w io.Writer, r Report) error {
	p := &printer{w: w}
	p.printf("Dataset: %s\n%s\n", r.Description, rule)
	p.printf("  Linear Search:              %s ms per search\n", ms(r.Linear, 4))
	if r.Sorted {
		p.printf("  Time to sort data:          %s ms (one-time cost)\n", ms(r.SortCost, 2))
	}
	p.printf("  Binary Search (Iterative):  %s ms per search\n", ms(r.BinaryIterative, 4))
	p.printf("  Binary Search (Recursive):  %s ms per search\n", ms(r.BinaryRecursive, 4))
	if r.HasSpeedup {
		p.printf("  Binary speedup:             %.2fx faster than linear\n", r.Speedup)
	}
	p.printf("\n")
	return p.err
}

// WriteBreakEven renders the break-even section. The break-even lines are
// omitted when binary search saves nothing per search.
func WriteBreakEven(w io.Writer, r BreakEvenReport) error {
	p := &printer{w: w}
	p.printf("\n")
	p.section("PREPROCESSING COST ANALYSIS")
	p.printf("Dataset: %s (%s entries)\n", r.Description, groupThousands(r.Size))
	p.printf("One-time sort cost: %s ms\n", ms(r.SortCost, 2))
	p.printf("Linear search time: %s ms per search\n", ms(r.Linear, 4))
	p.printf("Binary search time: %s ms per search\n", ms(r.Binary, 4))
	p.printf("Time saved per search: %s ms\n", ms(r.SavedPerSearch, 4))
	if r.HasBreakEven {
		p.printf("\nBreak-even point: %d searches\n", r.Searches)
		p.printf("After %d searches, sorting + binary search becomes faster\n", r.Searches)
	}
	return p.err
}
