// Package bench times search primitives.
//
// Every measurement brackets exactly one operation or batch: the clock is read
// immediately before it and, through a deferred stop, immediately after it on
// every return path. Nothing else (allocation of inputs, logging, result
// checks) runs inside the timed region.
//
//	avg := bench.Run(bench.SystemClock{}, search.Linear[int64], data, targets)
//	sorted, cost := bench.SortCost(bench.SystemClock{}, data)
package bench
