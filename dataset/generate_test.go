package dataset

import (
	"context"
	"slices"
	"testing"

	"github.com/hupe1980/searchbench/blobstore"
	"github.com/hupe1980/searchbench/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallGenerateConfig() GenerateConfig {
	cfg := DefaultGenerateConfig()
	cfg.Fixtures = []FixtureSpec{
		{File: "customer_ids.json", Style: StyleIDs, Size: 1000},
		{File: "product_catalog.json", Style: StyleSKUs, Size: 500, Sorted: true},
		{File: "config_settings.json", Style: StyleConfigKeys, Size: 50},
		{File: "dictionary_words.json", Style: StyleWords, Size: 300, Sorted: true},
	}
	cfg.Targets = 20
	return cfg
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	names, err := Generate(ctx, store, smallGenerateConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"customer_ids.json",
		"product_catalog.json",
		"config_settings.json",
		"dictionary_words.json",
		"test_cases.json",
	}, names)

	loader := NewLoader(store)
	tc, err := loader.LoadTestCases(ctx)
	require.NoError(t, err)

	ids, err := Load[int64](ctx, loader, "customer_ids.json")
	require.NoError(t, err)
	require.Equal(t, 1000, ids.Len())
	assert.False(t, ids.IsSorted())
	checkTargets(t, ids, tc, 20)

	catalog, err := Load[string](ctx, loader, "product_catalog.json")
	require.NoError(t, err)
	assert.True(t, catalog.IsSorted())
	checkTargets(t, catalog, tc, 20)

	settings, err := Load[string](ctx, loader, "config_settings.json")
	require.NoError(t, err)
	assert.Equal(t, 50, settings.Len())
	checkTargets(t, settings, tc, 20)

	words, err := Load[string](ctx, loader, "dictionary_words.json")
	require.NoError(t, err)
	assert.True(t, words.IsSorted())
	checkTargets(t, words, tc, 20)
}

func checkTargets[T interface{ ~int64 | ~string }](t *testing.T, d Dataset[T], tc TestCases, n int) {
	t.Helper()

	ts, err := Targets[T](tc, d.Name)
	require.NoError(t, err)
	require.Len(t, ts.Present, n)
	require.Len(t, ts.Absent, n)

	assert.Len(t, slices.Compact(slices.Sorted(slices.Values(d.Values))), d.Len(), "values must be unique")
	for _, p := range ts.Present {
		assert.NotEqual(t, search.NotFound, search.Linear(d.Values, p))
	}
	for _, a := range ts.Absent {
		assert.Equal(t, search.NotFound, search.Linear(d.Values, a))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	ctx := context.Background()
	a, b := blobstore.NewMemoryStore(), blobstore.NewMemoryStore()

	_, err := Generate(ctx, a, smallGenerateConfig())
	require.NoError(t, err)
	_, err = Generate(ctx, b, smallGenerateConfig())
	require.NoError(t, err)

	for _, name := range []string{"customer_ids.json", "test_cases.json"} {
		ba, err := a.Open(ctx, name)
		require.NoError(t, err)
		bb, err := b.Open(ctx, name)
		require.NoError(t, err)

		da, err := blobstore.ReadAll(ctx, ba)
		require.NoError(t, err)
		db, err := blobstore.ReadAll(ctx, bb)
		require.NoError(t, err)
		assert.Equal(t, da, db, name)
	}
}

func TestGenerate_Compressed(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	cfg := smallGenerateConfig()
	cfg.Compression = CompressionZstd

	names, err := Generate(ctx, store, cfg)
	require.NoError(t, err)
	assert.Contains(t, names, "customer_ids.json.zst")
	assert.Contains(t, names, "test_cases.json")

	ids, err := Load[int64](ctx, NewLoader(store), "customer_ids.json")
	require.NoError(t, err)
	assert.Equal(t, 1000, ids.Len())
}

func TestGenerate_InvalidSpec(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultGenerateConfig()

	cfg.Fixtures = []FixtureSpec{{File: "x.json", Style: "emoji", Size: 10}}
	_, err := Generate(ctx, blobstore.NewMemoryStore(), cfg)
	assert.Error(t, err)

	cfg.Fixtures = []FixtureSpec{{File: "x.json", Style: StyleIDs, Size: 0}}
	_, err = Generate(ctx, blobstore.NewMemoryStore(), cfg)
	assert.Error(t, err)
}
