package analysis

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/searchbench/bench"
	"github.com/hupe1980/searchbench/dataset"
	"github.com/hupe1980/searchbench/search"
)

// BreakEvenReport is the result of the break-even phase.
type BreakEvenReport struct {
	Dataset     string
	Description string
	Size        int
	Batch       int

	SortCost time.Duration
	Linear   time.Duration
	Binary   time.Duration

	// SavedPerSearch is Linear - Binary and may be negative.
	SavedPerSearch time.Duration

	// Searches is the break-even search count, valid only when
	// HasBreakEven is set.
	Searches     int64
	HasBreakEven bool
}

// BreakEvenSearches returns floor(sortCost / (linear - binary)), the number
// of searches after which sort-once plus binary search beats repeated linear
// scans. It reports false when binary search saves nothing per search.
func BreakEvenSearches(sortCost, linear, binary time.Duration) (int64, bool) {
	saved := linear - binary
	if saved <= 0 {
		return 0, false
	}
	return int64(sortCost / saved), true
}

// BreakEven runs the break-even phase on the configured dataset.
func (a *Analyzer) BreakEven(ctx context.Context) (BreakEvenReport, error) {
	tc, err := a.loader.LoadTestCases(ctx)
	if err != nil {
		return BreakEvenReport{}, err
	}

	be := a.cfg.BreakEven
	var r BreakEvenReport
	switch be.Kind {
	case dataset.KindInt:
		r, err = breakEvenDataset[int64](ctx, a, tc)
	case dataset.KindFloat:
		r, err = breakEvenDataset[float64](ctx, a, tc)
	case dataset.KindString:
		r, err = breakEvenDataset[string](ctx, a, tc)
	default:
		err = &ConfigError{Field: "break_even.kind", Reason: fmt.Sprintf("unsupported kind %q", be.Kind)}
	}
	if err != nil {
		return BreakEvenReport{}, fmt.Errorf("break-even %s: %w", be.Dataset, err)
	}

	a.logger.DebugContext(ctx, "break-even analyzed",
		"dataset", r.Dataset,
		"sort_cost", r.SortCost,
		"saved_per_search", r.SavedPerSearch,
		"searches", r.Searches,
		"has_break_even", r.HasBreakEven,
	)
	a.metrics.RecordBreakEven(r)
	return r, nil
}

func breakEvenDataset[T cmp.Ordered](ctx context.Context, a *Analyzer, tc dataset.TestCases) (BreakEvenReport, error) {
	d, err := dataset.Load[T](ctx, a.loader, a.cfg.BreakEven.Dataset)
	if err != nil {
		return BreakEvenReport{}, err
	}
	targets, err := dataset.Targets[T](tc, d.Name)
	if err != nil {
		return BreakEvenReport{}, err
	}
	batch := targets.PresentPrefix(a.cfg.BreakEvenBatchSize)

	r := BreakEvenReport{
		Dataset:     d.Name,
		Description: a.cfg.BreakEven.Description,
		Size:        d.Len(),
		Batch:       len(batch),
	}

	var sorted []T
	sorted, r.SortCost = bench.SortCost(a.clock, d.Values)
	r.Linear = bench.Run(a.clock, search.Linear[T], d.Values, batch)
	r.Binary = bench.Run(a.clock, search.BinaryIterative[T], sorted, batch)
	r.SavedPerSearch = r.Linear - r.Binary
	r.Searches, r.HasBreakEven = BreakEvenSearches(r.SortCost, r.Linear, r.Binary)

	return r, nil
}
