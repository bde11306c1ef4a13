package benchmark_test

import (
	"context"
	"sync"
	"testing"

	"github.com/hupe1980/searchbench/blobstore"
	"github.com/hupe1980/searchbench/dataset"
)

// FixtureConfig names a generated fixture set.
type FixtureConfig struct {
	Name        string
	Compression dataset.Compression
}

// StandardFixtures covers each supported compression with the default sizes.
var StandardFixtures = []FixtureConfig{
	{Name: "plain", Compression: dataset.CompressionNone},
	{Name: "zstd", Compression: dataset.CompressionZstd},
	{Name: "gzip", Compression: dataset.CompressionGzip},
	{Name: "lz4", Compression: dataset.CompressionLZ4},
}

var (
	fixtureMu     sync.Mutex
	fixtureStores = map[string]*blobstore.MemoryStore{}
)

// fixtureStore returns an in-memory store holding the default fixtures for
// fc, generating them on first use.
func fixtureStore(b *testing.B, fc FixtureConfig) *blobstore.MemoryStore {
	b.Helper()
	fixtureMu.Lock()
	defer fixtureMu.Unlock()

	if s, ok := fixtureStores[fc.Name]; ok {
		return s
	}

	s := blobstore.NewMemoryStore()
	cfg := dataset.DefaultGenerateConfig()
	cfg.Compression = fc.Compression
	if _, err := dataset.Generate(context.Background(), s, cfg); err != nil {
		b.Fatalf("generate %s: %v", fc.Name, err)
	}
	fixtureStores[fc.Name] = s
	return s
}
