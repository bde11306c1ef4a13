package search

import "cmp"

// NotFound is returned when no element matches the target.
const NotFound = -1

// Func is the common signature of all search primitives.
type Func[T any] func(s []T, target T) int

// Algorithm names a search primitive.
type Algorithm[T any] struct {
	Name string
	// NeedsSorted reports whether the input must be sorted ascending.
	NeedsSorted bool
	Search      Func[T]
}

// Algorithms returns the benchmarked primitives in report order.
func Algorithms[T cmp.Ordered]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "linear", Search: Linear[T]},
		{Name: "binary-iterative", NeedsSorted: true, Search: BinaryIterative[T]},
		{Name: "binary-recursive", NeedsSorted: true, Search: BinaryRecursive[T]},
	}
}

// Linear scans s from the start and returns the index of the first element
// equal to target, or NotFound.
func Linear[T comparable](s []T, target T) int {
	for i := range s {
		if s[i] == target {
			return i
		}
	}
	return NotFound
}

// BinaryIterative searches the closed interval [0, len(s)-1] of an ascending
// slice. Returns the index of a matching element or NotFound.
func BinaryIterative[T cmp.Ordered](s []T, target T) int {
	left, right := 0, len(s)-1
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return NotFound
}

// BinaryRecursive is the recursive form of BinaryIterative. It visits the same
// midpoints and returns the same index for every input.
func BinaryRecursive[T cmp.Ordered](s []T, target T) int {
	return binaryRecursive(s, target, 0, len(s)-1)
}

func binaryRecursive[T cmp.Ordered](s []T, target T, left, right int) int {
	if left > right {
		return NotFound
	}
	mid := left + (right-left)/2
	switch {
	case s[mid] == target:
		return mid
	case s[mid] < target:
		return binaryRecursive(s, target, mid+1, right)
	default:
		return binaryRecursive(s, target, left, mid-1)
	}
}
