// Package search provides the three search primitives benchmarked by searchbench.
//
// # Primitives
//
//	i := search.Linear(data, target)           // any order, O(n)
//	i := search.BinaryIterative(sorted, target) // sorted ascending, O(log n)
//	i := search.BinaryRecursive(sorted, target) // same result, recursive
//
// All primitives return the matching index or NotFound. They never fail and
// carry no state between calls.
//
// # Sortedness
//
// Both binary variants require input sorted ascending by Go's < operator on
// the element type. Sortedness is not validated; on unsorted input the result
// is undefined (it may be a wrong index, not merely NotFound).
package search
