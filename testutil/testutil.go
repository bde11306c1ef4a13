package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63n returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Ints returns num values in [0, maxVal). Duplicates are allowed.
func (r *RNG) Ints(num int, maxVal int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, num)
	for i := range out {
		out[i] = r.rand.Int63n(maxVal)
	}
	return out
}

// UniqueInts returns num distinct values in [0, maxVal) in random order.
// maxVal must be at least num.
func (r *RNG) UniqueInts(num int, maxVal int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int64]struct{}, num)
	out := make([]int64, 0, num)
	for len(out) < num {
		v := r.rand.Int63n(maxVal)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SortedUniqueInts returns num distinct values in [0, maxVal) in ascending order.
func (r *RNG) SortedUniqueInts(num int, maxVal int64) []int64 {
	out := r.UniqueInts(num, maxVal)
	slices.Sort(out)
	return out
}

// AbsentInts returns num distinct values that do not occur in values.
func (r *RNG) AbsentInts(values []int64, num int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make(map[int64]struct{}, len(values)+num)
	for _, v := range values {
		present[v] = struct{}{}
	}
	out := make([]int64, 0, num)
	for len(out) < num {
		v := r.rand.Int63() - r.rand.Int63()
		if _, ok := present[v]; ok {
			continue
		}
		present[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Words returns num distinct lowercase words of the given length in random order.
func (r *RNG) Words(num, length int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, num)
	out := make([]string, 0, num)
	buf := make([]byte, length)
	for len(out) < num {
		for i := range buf {
			buf[i] = byte('a' + r.rand.Intn(26))
		}
		w := string(buf)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Sample returns n values drawn from values without replacement.
// If n exceeds len(values), all values are returned in shuffled order.
func Sample[T any](r *RNG, values []T, n int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.rand.Perm(len(values))
	n = min(n, len(values))
	out := make([]T, n)
	for i := range out {
		out[i] = values[idx[i]]
	}
	return out
}

// Shuffle permutes s in place.
func Shuffle[T any](r *RNG, s []T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
