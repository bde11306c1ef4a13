package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCorrectness(t *testing.T) {
	results := CheckCorrectness()

	want := []struct {
		name     string
		algo     string
		call     string
		expected int
	}{
		{"Linear search on unsorted data", "linear", "linear_search([7, 2, 9, 1, 5, 13, 3, 11], 9)", 2},
		{"Linear search - item not found", "linear", "linear_search([7, 2, 9, 1, 5, 13, 3, 11], 99)", -1},
		{"Binary search iterative on sorted data", "binary-iterative", "binary_search_iterative([1, 3, 5, 7, 9, 11, 13, 15], 9)", 4},
		{"Binary search iterative - item not found", "binary-iterative", "binary_search_iterative([1, 3, 5, 7, 9, 11, 13, 15], 10)", -1},
		{"Binary search recursive on sorted data", "binary-recursive", "binary_search_recursive([1, 3, 5, 7, 9, 11, 13, 15], 13)", 6},
		{"Binary search recursive - item not found", "binary-recursive", "binary_search_recursive([1, 3, 5, 7, 9, 11, 13, 15], 8)", -1},
	}
	require.Len(t, results, len(want))

	for i, w := range want {
		r := results[i]
		assert.Equal(t, w.name, r.Name, "scenario %d", i+1)
		assert.Equal(t, w.algo, r.Algorithm, w.name)
		assert.Equal(t, w.call, r.Call(), w.name)
		assert.Equal(t, w.expected, r.Expected, w.name)
		assert.Equal(t, w.expected, r.Got, w.name)
		assert.True(t, r.Passed(), w.name)
	}
}

func TestCheckResult_Call(t *testing.T) {
	r := CheckResult{Algorithm: "linear", Data: []int{7, 2, 9}, Target: 9}
	assert.Equal(t, "linear([7, 2, 9], 9)", r.Call())

	r = CheckResult{Algorithm: "linear", Data: []int{}, Target: 5}
	assert.Equal(t, "linear([], 5)", r.Call())

	r = CheckResult{Algorithm: "linear", Function: "linear_search", Data: []int{1}, Target: 1}
	assert.Equal(t, "linear_search([1], 1)", r.Call())
}

func TestCheckResult_Passed(t *testing.T) {
	assert.True(t, CheckResult{Expected: -1, Got: -1}.Passed())
	assert.False(t, CheckResult{Expected: 2, Got: 3}.Passed())
}
