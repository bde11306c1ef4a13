package dataset

import (
	"cmp"
	"fmt"
	"path"
	"slices"
	"strings"
)

// Kind is the element type of a fixture.
type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindInt, KindFloat, KindString:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}

// Dataset is an ordered sequence of values loaded from a fixture.
type Dataset[T cmp.Ordered] struct {
	// Name is the fixture's base name, the key into the test-case file.
	Name   string
	Values []T
}

// Len returns the number of values.
func (d Dataset[T]) Len() int {
	return len(d.Values)
}

// IsSorted reports whether the values are in ascending order.
func (d Dataset[T]) IsSorted() bool {
	return slices.IsSorted(d.Values)
}

// TargetSet holds the query targets for one dataset.
type TargetSet[T cmp.Ordered] struct {
	Present []T
	Absent  []T
}

// Batch returns up to n present targets followed by up to n absent targets
// in a new slice.
func (t TargetSet[T]) Batch(n int) []T {
	p := t.Present[:min(n, len(t.Present))]
	a := t.Absent[:min(n, len(t.Absent))]
	out := make([]T, 0, len(p)+len(a))
	out = append(out, p...)
	return append(out, a...)
}

// PresentPrefix returns up to n present targets in a new slice.
func (t TargetSet[T]) PresentPrefix(n int) []T {
	return slices.Clone(t.Present[:min(n, len(t.Present))])
}

var compressionSuffixes = []string{".zst", ".gz", ".lz4"}

// BaseName strips the directory, any compression suffix and the .json
// extension: "datasets/customer_ids.json.zst" becomes "customer_ids".
func BaseName(file string) string {
	name := path.Base(strings.ReplaceAll(file, "\\", "/"))
	for _, suffix := range compressionSuffixes {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			name = trimmed
			break
		}
	}
	return strings.TrimSuffix(name, ".json")
}
