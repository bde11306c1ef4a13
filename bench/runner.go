package bench

import (
	"cmp"
	"slices"
	"time"

	"github.com/hupe1980/searchbench/search"
)

// Run invokes fn once per target, in order, and returns the average time per
// call. Results are discarded. An empty target list returns zero without
// calling fn.
func Run[T any](clock Clock, fn search.Func[T], data []T, targets []T) time.Duration {
	if len(targets) == 0 {
		return 0
	}
	total := Measure(clock, func() {
		for _, target := range targets {
			fn(data, target)
		}
	})
	return total / time.Duration(len(targets))
}

// SortCost returns a sorted copy of data and the time spent sorting it.
// The copy is made before the clock starts.
func SortCost[T cmp.Ordered](clock Clock, data []T) ([]T, time.Duration) {
	sorted := slices.Clone(data)
	cost := Measure(clock, func() {
		slices.Sort(sorted)
	})
	return sorted, cost
}
