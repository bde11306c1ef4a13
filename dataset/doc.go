// Package dataset loads benchmark fixtures and their query targets.
//
// A fixture is a flat JSON array of ordered values (integers, floats or
// strings). The shared test-case file maps each fixture's base name to the
// targets known to be present in it and the targets known to be absent:
//
//	{
//	  "customer_ids": {"present": [104711, ...], "absent": [99, ...]},
//	  "dictionary_words": {"present": ["apple", ...], "absent": ["zzq", ...]}
//	}
//
// Fixtures may be stored compressed; names ending in .zst, .gz or .lz4 are
// decompressed transparently, and a plain name falls back to its compressed
// variants when the plain file does not exist.
//
// # Loading
//
//	loader := dataset.NewLoader(blobstore.NewLocalStore("datasets"))
//	ids, err := dataset.Load[int64](ctx, loader, "customer_ids.json")
//	cases, err := loader.LoadTestCases(ctx)
//	targets, err := dataset.Targets[int64](cases, ids.Name)
//
// Loaded datasets are never mutated; Sorted returns a sorted copy.
package dataset
