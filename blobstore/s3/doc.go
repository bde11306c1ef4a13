// Package s3 provides an S3 implementation of the blobstore interfaces.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	loader := dataset.NewLoader(store)
//
// # Features
//
//   - Ranged reads through the S3 transfer manager
//   - Automatic pagination for listing
//   - Configurable prefix so several fixture sets can share a bucket
package s3
