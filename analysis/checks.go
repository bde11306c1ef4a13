package analysis

import (
	"fmt"
	"strings"

	"github.com/hupe1980/searchbench/search"
)

// CheckResult is the outcome of one correctness scenario.
type CheckResult struct {
	Name string
	// Algorithm is the key of the algorithm in search.Algorithms.
	Algorithm string
	// Function is the name printed in the report. Empty means Algorithm.
	Function string
	Data     []int
	Target   int
	Expected int
	Got      int
}

// Passed reports whether the algorithm returned the expected index.
func (c CheckResult) Passed() bool {
	return c.Got == c.Expected
}

// Call renders the invocation, e.g. "linear_search([1, 3, 5], 5)".
func (c CheckResult) Call() string {
	fn := c.Function
	if fn == "" {
		fn = c.Algorithm
	}
	parts := make([]string, len(c.Data))
	for i, v := range c.Data {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s([%s], %d)", fn, strings.Join(parts, ", "), c.Target)
}

type check struct {
	name     string
	algo     search.Algorithm[int]
	function string
	data     []int
	target   int
	expected int
}

var (
	unsortedSample = []int{7, 2, 9, 1, 5, 13, 3, 11}
	sortedSample   = []int{1, 3, 5, 7, 9, 11, 13, 15}
)

// Report names of the three algorithms.
const (
	linearFunction    = "linear_search"
	iterativeFunction = "binary_search_iterative"
	recursiveFunction = "binary_search_recursive"
)

func checks() []check {
	algos := search.Algorithms[int]()
	linear, iterative, recursive := algos[0], algos[1], algos[2]
	return []check{
		{"Linear search on unsorted data", linear, linearFunction, unsortedSample, 9, 2},
		{"Linear search - item not found", linear, linearFunction, unsortedSample, 99, search.NotFound},
		{"Binary search iterative on sorted data", iterative, iterativeFunction, sortedSample, 9, 4},
		{"Binary search iterative - item not found", iterative, iterativeFunction, sortedSample, 10, search.NotFound},
		{"Binary search recursive on sorted data", recursive, recursiveFunction, sortedSample, 13, 6},
		{"Binary search recursive - item not found", recursive, recursiveFunction, sortedSample, 8, search.NotFound},
	}
}

// CheckCorrectness runs the fixed correctness scenarios and returns one
// result per scenario, in order. It never fails; a wrong answer shows up as
// a result whose Passed method returns false.
func CheckCorrectness() []CheckResult {
	cs := checks()
	results := make([]CheckResult, 0, len(cs))
	for _, c := range cs {
		results = append(results, CheckResult{
			Name:      c.name,
			Algorithm: c.algo.Name,
			Function:  c.function,
			Data:      c.data,
			Target:    c.target,
			Expected:  c.expected,
			Got:       c.algo.Search(c.data, c.target),
		})
	}
	return results
}
