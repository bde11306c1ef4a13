package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	src := []byte(`["a", "b"]`)
	require.NoError(t, store.Put(ctx, "words.json", src))
	src[0] = 'X'

	blob, err := store.Open(ctx, "words.json")
	require.NoError(t, err)
	defer blob.Close()

	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, `["a", "b"]`, string(data))

	n, err := blob.ReadAt(ctx, make([]byte, 2), -1)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	names, err := store.List(ctx, "w")
	require.NoError(t, err)
	assert.Equal(t, []string{"words.json"}, names)

	_, err = store.Open(ctx, "ids.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Stats(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.json", []byte("[1,2]")))
	require.NoError(t, store.Put(ctx, "b.json", []byte("[]")))
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, int64(7), store.TotalBytes())

	require.NoError(t, store.Put(ctx, "a.json", []byte("[1]")))
	assert.Equal(t, int64(5), store.TotalBytes())
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_Canceled(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "a.json", []byte("[]")), context.Canceled)
	_, err := store.Open(ctx, "a.json")
	assert.ErrorIs(t, err, context.Canceled)
}

// readerAtOnly hides Mappable so ReadAll takes the ReadAt path.
type readerAtOnly struct {
	Blob
}

func TestReadAll_ReadAtPath(t *testing.T) {
	ctx := context.Background()
	blob := readerAtOnly{Blob: &memoryBlob{data: []byte("0123456789")}}

	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))
}

type countingStore struct {
	*MemoryStore
	opens int
}

func (c *countingStore) Open(ctx context.Context, name string) (Blob, error) {
	c.opens++
	return c.MemoryStore.Open(ctx, name)
}

func TestCachingStore(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{MemoryStore: NewMemoryStore()}
	require.NoError(t, inner.Put(ctx, "ids.json", []byte(`[3, 1, 2]`)))

	store := NewCachingStore(inner)

	for i := 0; i < 3; i++ {
		blob, err := store.Open(ctx, "ids.json")
		require.NoError(t, err)
		data, err := ReadAll(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, `[3, 1, 2]`, string(data))
		require.NoError(t, blob.Close())
	}

	assert.Equal(t, 1, inner.opens)
	hits, misses := store.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(1), misses)

	require.NoError(t, store.Put(ctx, "ids.json", []byte(`[4]`)))
	blob, err := store.Open(ctx, "ids.json")
	require.NoError(t, err)
	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, `[4]`, string(data))
	assert.Equal(t, 1, inner.opens)

	_, err = store.Open(ctx, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ids.json"}, names)

	_, err = NewCachingStore(readOnlyStore{inner.MemoryStore}).List(ctx, "")
	assert.ErrorIs(t, err, ErrNotListable)
}

// readOnlyStore exposes only Open.
type readOnlyStore struct {
	m *MemoryStore
}

func (r readOnlyStore) Open(ctx context.Context, name string) (Blob, error) {
	return r.m.Open(ctx, name)
}
