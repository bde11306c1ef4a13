// Package analysis runs the search benchmarks and renders the report.
//
// A run has three phases, executed top to bottom:
//
//  1. Correctness checks: six fixed scenarios for the three primitives.
//  2. Comparative benchmarks: for each configured dataset, average latency
//     of linear search on the raw data and of both binary searches on the
//     sorted data, plus the one-time sort cost where sorting is required.
//  3. Break-even analysis: how many searches it takes for sort-once plus
//     binary search to beat repeated linear scans.
//
// The dataset table and batch sizes come from Config; DefaultConfig returns
// the standard four-dataset table. Any load error aborts the run.
//
//	a, err := analysis.NewAnalyzer(loader, analysis.DefaultConfig())
//	result, err := a.Run(ctx, os.Stdout)
package analysis
