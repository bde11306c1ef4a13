package dataset

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hupe1980/searchbench/blobstore"
	"github.com/hupe1980/searchbench/codec"
)

// DefaultTestCasesFile is the name of the shared test-case file.
const DefaultTestCasesFile = "test_cases.json"

// Loader reads fixtures and the test-case file from a BlobStore.
type Loader struct {
	store         blobstore.BlobStore
	codec         codec.Codec
	logger        *slog.Logger
	testCasesFile string
}

// Option configures a Loader.
type Option func(*Loader)

// WithCodec sets the codec used to decode fixtures.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(l *Loader) {
		if c == nil {
			c = codec.Default
		}
		l.codec = c
	}
}

// WithLogger sets the logger for load events.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithTestCasesFile overrides DefaultTestCasesFile.
func WithTestCasesFile(name string) Option {
	return func(l *Loader) {
		l.testCasesFile = name
	}
}

// NewLoader creates a Loader reading from store.
func NewLoader(store blobstore.BlobStore, opts ...Option) *Loader {
	l := &Loader{
		store:         store,
		codec:         codec.Default,
		logger:        slog.New(slog.DiscardHandler),
		testCasesFile: DefaultTestCasesFile,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TestCasesFile returns the configured test-case file name.
func (l *Loader) TestCasesFile() string {
	return l.testCasesFile
}

// candidates lists the names tried for file, the plain name first.
func candidates(file string) []string {
	if compressionOf(file) != CompressionNone {
		return []string{file}
	}
	names := []string{file}
	for _, suffix := range compressionSuffixes {
		names = append(names, file+suffix)
	}
	return names
}

// read returns the decompressed contents of file or of its first existing
// compressed variant.
func (l *Loader) read(ctx context.Context, file string) ([]byte, error) {
	var notFound error
	for _, name := range candidates(file) {
		b, err := l.store.Open(ctx, name)
		if errors.Is(err, blobstore.ErrNotFound) {
			if notFound == nil {
				notFound = err
			}
			continue
		}
		if err != nil {
			return nil, &LoadError{File: name, cause: err}
		}

		data, err := blobstore.ReadAll(ctx, b)
		closeErr := b.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			return nil, &LoadError{File: name, cause: err}
		}

		raw, err := decompress(compressionOf(name), data)
		if err != nil {
			return nil, &DecodeError{File: name, cause: err}
		}
		l.logger.DebugContext(ctx, "fixture read", "file", name, "bytes", len(data), "decoded_bytes", len(raw))
		return raw, nil
	}
	return nil, &LoadError{File: file, cause: notFound}
}

// Load reads a fixture holding a flat JSON array of T.
func Load[T cmp.Ordered](ctx context.Context, l *Loader, file string) (Dataset[T], error) {
	raw, err := l.read(ctx, file)
	if err != nil {
		return Dataset[T]{}, err
	}

	var values []T
	if err := l.codec.Unmarshal(raw, &values); err != nil {
		return Dataset[T]{}, &DecodeError{File: file, cause: err}
	}

	d := Dataset[T]{Name: BaseName(file), Values: values}
	l.logger.DebugContext(ctx, "dataset loaded", "file", file, "name", d.Name, "size", d.Len())
	return d, nil
}

type rawTargets struct {
	Present json.RawMessage `json:"present"`
	Absent  json.RawMessage `json:"absent"`
}

// TestCases is the decoded test-case file. Target lists stay raw until a
// caller asks for them with a concrete element type via Targets.
type TestCases struct {
	file    string
	codec   codec.Codec
	entries map[string]rawTargets
}

// Names returns the dataset names with targets, sorted.
func (tc TestCases) Names() []string {
	names := make([]string, 0, len(tc.entries))
	for name := range tc.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether the file has targets for name.
func (tc TestCases) Has(name string) bool {
	_, ok := tc.entries[name]
	return ok
}

// LoadTestCases reads and decodes the shared test-case file.
func (l *Loader) LoadTestCases(ctx context.Context) (TestCases, error) {
	raw, err := l.read(ctx, l.testCasesFile)
	if err != nil {
		return TestCases{}, err
	}

	var entries map[string]rawTargets
	if err := l.codec.Unmarshal(raw, &entries); err != nil {
		return TestCases{}, &DecodeError{File: l.testCasesFile, cause: err}
	}

	l.logger.DebugContext(ctx, "test cases loaded", "file", l.testCasesFile, "datasets", len(entries))
	return TestCases{file: l.testCasesFile, codec: l.codec, entries: entries}, nil
}

// Targets decodes the present and absent targets for the named dataset.
func Targets[T cmp.Ordered](tc TestCases, name string) (TargetSet[T], error) {
	entry, ok := tc.entries[name]
	if !ok {
		return TargetSet[T]{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}

	present, err := decodeTargets[T](tc, entry.Present)
	if err != nil {
		return TargetSet[T]{}, &DecodeError{File: tc.file + ":" + name + ".present", cause: err}
	}
	absent, err := decodeTargets[T](tc, entry.Absent)
	if err != nil {
		return TargetSet[T]{}, &DecodeError{File: tc.file + ":" + name + ".absent", cause: err}
	}

	return TargetSet[T]{Present: present, Absent: absent}, nil
}

func decodeTargets[T cmp.Ordered](tc TestCases, raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	c := tc.codec
	if c == nil {
		c = codec.Default
	}
	var out []T
	if err := c.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
