package analysis

import (
	"context"
	"io"
)

// Result collects everything a full run produced.
type Result struct {
	Checks    []CheckResult
	Reports   []Report
	BreakEven BreakEvenReport
}

// FailedChecks returns the number of correctness scenarios that failed.
func (r *Result) FailedChecks() int {
	n := 0
	for _, c := range r.Checks {
		if !c.Passed() {
			n++
		}
	}
	return n
}

// Check runs only the correctness phase and renders it to w.
func (a *Analyzer) Check(ctx context.Context, w io.Writer) ([]CheckResult, error) {
	results := CheckCorrectness()
	for _, c := range results {
		a.metrics.RecordCheck(c)
		if !c.Passed() {
			a.logger.WarnContext(ctx, "correctness check failed",
				"check", c.Name,
				"expected", c.Expected,
				"got", c.Got,
			)
		}
	}
	if err := WriteChecks(w, results); err != nil {
		return nil, err
	}
	return results, nil
}

// Run executes the correctness, comparison and break-even phases in order,
// rendering each to w as it completes. The first load error aborts the run;
// sections already written stay written.
func (a *Analyzer) Run(ctx context.Context, w io.Writer) (*Result, error) {
	checks, err := a.Check(ctx, w)
	if err != nil {
		return nil, err
	}
	res := &Result{Checks: checks}

	if err := WriteComparisonHeader(w); err != nil {
		return nil, err
	}
	err = a.CompareEach(ctx, func(r Report) error {
		res.Reports = append(res.Reports, r)
		return WriteReport(w, r)
	})
	if err != nil {
		return nil, err
	}

	be, err := a.BreakEven(ctx)
	if err != nil {
		return nil, err
	}
	res.BreakEven = be
	if err := WriteBreakEven(w, be); err != nil {
		return nil, err
	}
	return res, nil
}
