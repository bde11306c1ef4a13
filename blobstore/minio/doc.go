// Package minio provides a fixture store implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible storage systems like Ceph,
// SeaweedFS, and Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "fixtures", "datasets/")
//	loader := dataset.NewLoader(store)
//
// Credentials for the CLI come from MINIO_ACCESS_KEY / MINIO_SECRET_KEY
// (see NewClientFromEnv).
package minio
