package dataset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/searchbench/blobstore"
)

var (
	// ErrNotFound is returned when a fixture file does not exist.
	ErrNotFound = blobstore.ErrNotFound

	// ErrUnknownDataset is returned when the test-case file has no entry for a dataset.
	ErrUnknownDataset = errors.New("dataset not in test cases")

	// ErrUnsupportedKind is returned for element kinds other than int, float and string.
	ErrUnsupportedKind = errors.New("unsupported dataset kind")
)

// LoadError reports a fixture that could not be read.
//
// The underlying I/O error can be accessed via errors.Unwrap.
type LoadError struct {
	File  string
	cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.File, e.cause)
}

func (e *LoadError) Unwrap() error { return e.cause }

// DecodeError reports a fixture whose content is not the expected JSON shape.
//
// The underlying decompression or parse error can be accessed via errors.Unwrap.
type DecodeError struct {
	File  string
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.File, e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }
