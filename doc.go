// Package searchbench benchmarks linear search against iterative and
// recursive binary search on fixture datasets.
//
// A run checks the three search primitives for correctness, compares their
// average latency on each configured dataset, and computes the number of
// searches after which sorting once and searching with binary search beats
// repeated linear scans.
//
// # Quick Start
//
//	ctx := context.Background()
//	res, err := searchbench.Run(ctx, os.Stdout, searchbench.WithDataDir("./data"))
//
// Fixtures can come from any blobstore.BlobStore:
//
//	s3Store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("fixtures/"))
//	res, err := searchbench.Run(ctx, os.Stdout,
//	    searchbench.WithStore(blobstore.NewCachingStore(s3Store)))
//
// # Fixtures
//
// Each dataset is a flat JSON array of integers, floats or strings. A shared
// test_cases.json maps each dataset's base name to its present and absent
// targets:
//
//	{"customer_ids": {"present": [17, 42], "absent": [-1, 1000001]}}
//
// Fixtures may be compressed with zstd, gzip or lz4 (".zst", ".gz", ".lz4"
// suffixes). Generate writes a deterministic default set.
//
// # Configuration
//
// The dataset table and batch sizes live in analysis.Config and may be
// loaded from YAML with analysis.LoadConfigFile.
//
// # Observability
//
// Structured logs go through Logger (log/slog). Results can be exported with
// any analysis.MetricsCollector; the metrics package provides a Prometheus
// textfile exporter.
package searchbench
