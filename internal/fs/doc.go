// Package fs abstracts the file system operations used to write fixtures so
// tests can inject I/O failures.
//
// Production code uses fs.Default ([LocalFS]). Tests wrap it in [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("customer_ids", fs.Fault{FailAfterBytes: 0})
//
// Reads go through internal/mmap and are not covered here.
package fs
