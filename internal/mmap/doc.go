// Package mmap provides read-only memory-mapped file access.
//
// The local fixture store maps dataset files instead of copying them through
// read buffers; the mapping is released as soon as the blob is closed.
//
//	m, err := mmap.Open("datasets/customer_ids.json")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// Unix uses mmap(2) and madvise(2). Windows uses CreateFileMapping and
// MapViewOfFile; access hints are a no-op there.
package mmap
