package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/searchbench/blobstore"
	"github.com/hupe1980/searchbench/blobstore/minio"
	"github.com/hupe1980/searchbench/blobstore/s3"
)

// location is a parsed fixture source.
type location struct {
	scheme   string // "file", "s3" or "minio"
	path     string // local directory
	endpoint string // minio host:port
	bucket   string
	prefix   string
}

func parseLocation(uri string) (location, error) {
	if uri == "" {
		return location{}, errors.New("empty fixture location")
	}
	if !strings.Contains(uri, "://") {
		return location{scheme: "file", path: uri}, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return location{}, fmt.Errorf("parse fixture location %q: %w", uri, err)
	}

	switch u.Scheme {
	case "file":
		return location{scheme: "file", path: u.Host + u.Path}, nil
	case "s3":
		if u.Host == "" {
			return location{}, fmt.Errorf("s3 location %q has no bucket", uri)
		}
		return location{scheme: "s3", bucket: u.Host, prefix: strings.TrimPrefix(u.Path, "/")}, nil
	case "minio":
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return location{}, fmt.Errorf("minio location %q must be minio://host:port/bucket[/prefix]", uri)
		}
		return location{scheme: "minio", endpoint: u.Host, bucket: bucket, prefix: prefix}, nil
	default:
		return location{}, fmt.Errorf("unsupported fixture location scheme %q", u.Scheme)
	}
}

// openStore resolves uri to a store. Remote stores are wrapped in a
// CachingStore so each fixture is downloaded once per run.
func openStore(ctx context.Context, uri string) (blobstore.BlobStore, error) {
	loc, err := parseLocation(uri)
	if err != nil {
		return nil, err
	}

	switch loc.scheme {
	case "s3":
		store, err := s3.New(ctx, loc.bucket, s3.WithPrefix(loc.prefix))
		if err != nil {
			return nil, err
		}
		return blobstore.NewCachingStore(store), nil
	case "minio":
		client, err := minio.NewClientFromEnv(loc.endpoint)
		if err != nil {
			return nil, err
		}
		return blobstore.NewCachingStore(minio.NewStore(client, loc.bucket, loc.prefix)), nil
	default:
		return blobstore.NewLocalStore(loc.path), nil
	}
}
