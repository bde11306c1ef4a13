// Package blobstore provides the storage abstraction fixture files are read from.
//
// BlobStore is the read interface the dataset loader depends on; Store adds
// the write and list operations used by the fixture generator.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local directory with mmap-backed reads
//   - MemoryStore: in-memory map, for tests
//   - CachingStore: whole-blob memory cache in front of a remote store
//   - minio.Store: MinIO and S3-compatible endpoints
//   - s3.Store: Amazon S3
//
// # Reading
//
//	blob, err := store.Open(ctx, "customer_ids.json")
//	if err != nil { ... }
//	defer blob.Close()
//	data, err := blobstore.ReadAll(ctx, blob)
package blobstore
