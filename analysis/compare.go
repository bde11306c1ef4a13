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

// Report is the comparison result for one dataset. All durations are
// averages per search except SortCost, which is a one-time cost.
type Report struct {
	Dataset     string
	Description string
	Size        int
	// Batch is the number of targets timed per algorithm.
	Batch int

	Linear          time.Duration
	BinaryIterative time.Duration
	BinaryRecursive time.Duration

	// Sorted reports whether the data was sorted before the binary
	// searches; SortCost is zero otherwise.
	Sorted   bool
	SortCost time.Duration

	// Speedup is Linear / BinaryIterative. It is only meaningful when
	// HasSpeedup is set, which requires a non-zero binary time.
	Speedup    float64
	HasSpeedup bool
}

// Speedup returns linear / binary, or false when binary is not positive.
func Speedup(linear, binary time.Duration) (float64, bool) {
	if binary <= 0 {
		return 0, false
	}
	return float64(linear) / float64(binary), true
}

// Compare runs the comparison phase and returns one report per configured
// dataset, in table order.
func (a *Analyzer) Compare(ctx context.Context) ([]Report, error) {
	reports := make([]Report, 0, len(a.cfg.Datasets))
	err := a.CompareEach(ctx, func(r Report) error {
		reports = append(reports, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// CompareEach runs the comparison phase and hands each report to fn as soon
// as its dataset is done. The first error from loading or from fn stops the
// phase.
func (a *Analyzer) CompareEach(ctx context.Context, fn func(Report) error) error {
	tc, err := a.loader.LoadTestCases(ctx)
	if err != nil {
		return err
	}

	for _, dc := range a.cfg.Datasets {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, err := a.compareOne(ctx, tc, dc)
		if err != nil {
			return fmt.Errorf("compare %s: %w", dc.File, err)
		}

		a.logger.DebugContext(ctx, "dataset benchmarked",
			"dataset", r.Dataset,
			"size", r.Size,
			"linear", r.Linear,
			"binary_iterative", r.BinaryIterative,
			"binary_recursive", r.BinaryRecursive,
			"sort_cost", r.SortCost,
		)
		a.metrics.RecordReport(r)

		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) compareOne(ctx context.Context, tc dataset.TestCases, dc DatasetConfig) (Report, error) {
	switch dc.Kind {
	case dataset.KindInt:
		return compareDataset[int64](ctx, a, tc, dc)
	case dataset.KindFloat:
		return compareDataset[float64](ctx, a, tc, dc)
	case dataset.KindString:
		return compareDataset[string](ctx, a, tc, dc)
	default:
		return Report{}, &ConfigError{Field: "kind", Reason: fmt.Sprintf("unsupported kind %q", dc.Kind)}
	}
}

func compareDataset[T cmp.Ordered](ctx context.Context, a *Analyzer, tc dataset.TestCases, dc DatasetConfig) (Report, error) {
	d, err := dataset.Load[T](ctx, a.loader, dc.File)
	if err != nil {
		return Report{}, err
	}
	targets, err := dataset.Targets[T](tc, d.Name)
	if err != nil {
		return Report{}, err
	}

	batch := targets.Batch(a.cfg.ComparisonBatchSize)
	a.rng.Shuffle(len(batch), func(i, j int) {
		batch[i], batch[j] = batch[j], batch[i]
	})

	r := Report{
		Dataset:     d.Name,
		Description: dc.Description,
		Size:        d.Len(),
		Batch:       len(batch),
	}

	r.Linear = bench.Run(a.clock, search.Linear[T], d.Values, batch)

	sorted := d.Values
	if dc.RequiresSort {
		sorted, r.SortCost = bench.SortCost(a.clock, d.Values)
		r.Sorted = true
	} else if !d.IsSorted() {
		a.logger.WarnContext(ctx, "dataset configured as pre-sorted is not in ascending order; binary search results are undefined",
			"dataset", d.Name, "file", dc.File)
	}

	r.BinaryIterative = bench.Run(a.clock, search.BinaryIterative[T], sorted, batch)
	r.BinaryRecursive = bench.Run(a.clock, search.BinaryRecursive[T], sorted, batch)
	r.Speedup, r.HasSpeedup = Speedup(r.Linear, r.BinaryIterative)

	return r, nil
}
