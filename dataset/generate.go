package dataset

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/hupe1980/searchbench/blobstore"
	"github.com/hupe1980/searchbench/codec"
)

// Style selects the value generator for a fixture.
type Style string

const (
	// StyleIDs produces numeric identifiers.
	StyleIDs Style = "ids"
	// StyleSKUs produces zero-padded product codes such as "SKU-0004711".
	StyleSKUs Style = "skus"
	// StyleConfigKeys produces dotted keys such as "cache.ttl_seconds".
	StyleConfigKeys Style = "config-keys"
	// StyleWords produces lowercase words.
	StyleWords Style = "words"
)

// FixtureSpec describes one generated fixture.
type FixtureSpec struct {
	File   string
	Style  Style
	Size   int
	Sorted bool
}

// DefaultFixtures mirrors the four datasets of the default benchmark table.
func DefaultFixtures() []FixtureSpec {
	return []FixtureSpec{
		{File: "customer_ids.json", Style: StyleIDs, Size: 100_000},
		{File: "product_catalog.json", Style: StyleSKUs, Size: 50_000, Sorted: true},
		{File: "config_settings.json", Style: StyleConfigKeys, Size: 500},
		{File: "dictionary_words.json", Style: StyleWords, Size: 10_000, Sorted: true},
	}
}

// GenerateConfig configures Generate.
type GenerateConfig struct {
	Fixtures []FixtureSpec
	// Targets is the number of present and of absent targets per fixture.
	Targets       int
	Seed          int64
	Compression   Compression
	TestCasesFile string
	Codec         codec.Codec
	Logger        *slog.Logger
}

// DefaultGenerateConfig returns the configuration used by the generate command.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Fixtures:      DefaultFixtures(),
		Targets:       100,
		Seed:          42,
		TestCasesFile: DefaultTestCasesFile,
	}
}

type generatedTargets struct {
	Present any `json:"present"`
	Absent  any `json:"absent"`
}

// Generate writes every fixture in cfg plus the test-case file to w and
// returns the written names. Output is deterministic for a given seed.
// The test-case file is never compressed.
func Generate(ctx context.Context, w blobstore.Writer, cfg GenerateConfig) ([]string, error) {
	if cfg.Codec == nil {
		cfg.Codec = codec.Default
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.TestCasesFile == "" {
		cfg.TestCasesFile = DefaultTestCasesFile
	}

	r := rand.New(rand.NewSource(cfg.Seed)) // nolint gosec
	cases := make(map[string]generatedTargets, len(cfg.Fixtures))
	var written []string

	for _, spec := range cfg.Fixtures {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		values, present, absent, err := generateFixture(r, spec, cfg.Targets)
		if err != nil {
			return written, err
		}

		data, err := cfg.Codec.Marshal(values)
		if err != nil {
			return written, fmt.Errorf("encode %s: %w", spec.File, err)
		}
		data, err = compress(cfg.Compression, data)
		if err != nil {
			return written, fmt.Errorf("compress %s: %w", spec.File, err)
		}

		name := spec.File + cfg.Compression.Suffix()
		if err := w.Put(ctx, name, data); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, name)
		cases[BaseName(spec.File)] = generatedTargets{Present: present, Absent: absent}

		cfg.Logger.InfoContext(ctx, "fixture generated", "file", name, "size", spec.Size, "sorted", spec.Sorted, "bytes", len(data))
	}

	data, err := cfg.Codec.Marshal(cases)
	if err != nil {
		return written, fmt.Errorf("encode %s: %w", cfg.TestCasesFile, err)
	}
	if err := w.Put(ctx, cfg.TestCasesFile, data); err != nil {
		return written, fmt.Errorf("write %s: %w", cfg.TestCasesFile, err)
	}
	written = append(written, cfg.TestCasesFile)

	return written, nil
}

func generateFixture(r *rand.Rand, spec FixtureSpec, targets int) (values, present, absent any, err error) {
	if spec.Size <= 0 {
		return nil, nil, nil, fmt.Errorf("fixture %s: size must be positive", spec.File)
	}
	space := int64(spec.Size+targets) * 20

	switch spec.Style {
	case StyleIDs:
		base := int64(100_000)
		v, p, a := build(r, spec, targets, func() int64 { return base + r.Int63n(space) })
		return v, p, a, nil
	case StyleSKUs:
		v, p, a := build(r, spec, targets, func() string { return fmt.Sprintf("SKU-%07d", r.Int63n(space)) })
		return v, p, a, nil
	case StyleConfigKeys:
		sections := []string{"app", "cache", "db", "http", "log", "queue", "auth", "feature"}
		v, p, a := build(r, spec, targets, func() string {
			return sections[r.Intn(len(sections))] + "." + word(r, 4, 9) + "_" + word(r, 2, 6)
		})
		return v, p, a, nil
	case StyleWords:
		v, p, a := build(r, spec, targets, func() string { return word(r, 3, 10) })
		return v, p, a, nil
	default:
		return nil, nil, nil, fmt.Errorf("fixture %s: unknown style %q", spec.File, spec.Style)
	}
}

// build draws spec.Size distinct values for the fixture and targets further
// distinct values for the absent list, then samples the present list.
func build[T cmp.Ordered](r *rand.Rand, spec FixtureSpec, targets int, next func() T) (values, present, absent []T) {
	seen := make(map[T]struct{}, spec.Size+targets)
	draw := func(n int) []T {
		out := make([]T, 0, n)
		for len(out) < n {
			v := next()
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
		return out
	}

	values = draw(spec.Size)
	absent = draw(targets)

	perm := r.Perm(len(values))
	present = make([]T, min(targets, len(values)))
	for i := range present {
		present[i] = values[perm[i]]
	}

	if spec.Sorted {
		slices.Sort(values)
	}
	return values, present, absent
}

func word(r *rand.Rand, minLen, maxLen int) string {
	n := minLen + r.Intn(maxLen-minLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + r.Intn(26))
	}
	return string(b)
}
