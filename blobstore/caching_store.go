package blobstore

import (
	"context"
	"sync"
	"sync/atomic"
)

// CachingStore wraps a BlobStore and keeps whole blobs in memory after the
// first read. Fixtures are immutable, so entries are never invalidated by the
// inner store; Put through the CachingStore replaces the cached entry.
type CachingStore struct {
	inner BlobStore

	mu    sync.Mutex
	blobs map[string][]byte

	hits   atomic.Int64
	misses atomic.Int64
}

var _ Store = (*CachingStore)(nil)

// NewCachingStore creates a new CachingStore.
func NewCachingStore(inner BlobStore) *CachingStore {
	return &CachingStore{
		inner: inner,
		blobs: make(map[string][]byte),
	}
}

// Open returns the cached blob, reading it fully from the inner store on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	s.mu.Lock()
	data, ok := s.blobs[name]
	s.mu.Unlock()
	if ok {
		s.hits.Add(1)
		return &memoryBlob{data: data}, nil
	}
	s.misses.Add(1)

	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	data, err = ReadAll(ctx, b)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.blobs[name] = data
	s.mu.Unlock()

	return &memoryBlob{data: data}, nil
}

// Put writes through to the inner store if it is a Writer and refreshes the cache.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if w, ok := s.inner.(Writer); ok {
		if err := w.Put(ctx, name, data); err != nil {
			return err
		}
	}
	copied := make([]byte, len(data))
	copy(copied, data)

	s.mu.Lock()
	s.blobs[name] = copied
	s.mu.Unlock()
	return nil
}

// List delegates to the inner store. It returns ErrNotListable when the
// inner store cannot enumerate blobs.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	st, ok := s.inner.(Store)
	if !ok {
		return nil, ErrNotListable
	}
	return st.List(ctx, prefix)
}

// Stats returns the number of cache hits and misses so far.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}
