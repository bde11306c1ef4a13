// Package testutil provides testing utilities for searchbench.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generators for ordered datasets and for
// present/absent target splits.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.UniqueInts(1000, 1_000_000) // unsorted, no duplicates
//	words := rng.Words(500, 6)             // unsorted lowercase words
//
// # Targets
//
//	present := testutil.Sample(rng, ids, 50)
//	absent := rng.AbsentInts(ids, 50)
package testutil
