package search

import (
	"fmt"
	"slices"
	"testing"

	"github.com/hupe1980/searchbench/testutil"
)

func BenchmarkSearch(b *testing.B) {
	for _, n := range []int{500, 10_000, 100_000} {
		rng := testutil.NewRNG(42)
		data := rng.UniqueInts(n, int64(n)*10)
		sorted := slices.Clone(data)
		slices.Sort(sorted)
		targets := testutil.Sample(rng, data, 64)

		for _, alg := range Algorithms[int64]() {
			input := data
			if alg.NeedsSorted {
				input = sorted
			}
			b.Run(fmt.Sprintf("%s/n=%d", alg.Name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_ = alg.Search(input, targets[i%len(targets)])
				}
			})
		}
	}
}
