package searchbench

import (
	"errors"
	"fmt"

	"github.com/hupe1980/searchbench/analysis"
	"github.com/hupe1980/searchbench/dataset"
)

var (
	// ErrNotFound is returned when a fixture or the test-case file is missing.
	ErrNotFound = dataset.ErrNotFound

	// ErrUnknownDataset is returned when the test-case file has no entry for
	// a dataset.
	ErrUnknownDataset = dataset.ErrUnknownDataset

	// ErrInvalidConfig is returned for an unusable benchmark configuration.
	ErrInvalidConfig = analysis.ErrInvalidConfig

	// ErrNoStore is returned when no fixture source was configured.
	ErrNoStore = errors.New("no fixture store configured")
)

// ErrChecksFailed reports correctness scenarios that returned the wrong index.
type ErrChecksFailed struct {
	Failed int
	Total  int
}

func (e *ErrChecksFailed) Error() string {
	return fmt.Sprintf("%d of %d correctness checks failed", e.Failed, e.Total)
}
