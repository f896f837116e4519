package testutil

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

type TestBuckets struct {
	Assets  string
	Exports string
	Cleanup func() error
}

// SetupTestBuckets creates a fresh assets/exports pair with unique names.
func SetupTestBuckets(client *minio.Client, suffix string) (*TestBuckets, error) {
	ctx := context.Background()
	tb := &TestBuckets{
		Assets:  "assets-" + suffix,
		Exports: "exports-" + suffix,
	}
	buckets := []string{tb.Assets, tb.Exports}

	for _, b := range buckets {
		if err := client.MakeBucket(ctx, b, minio.MakeBucketOptions{}); err != nil {
			exists, err2 := client.BucketExists(ctx, b)
			if err2 != nil || !exists {
				return nil, fmt.Errorf("could not create bucket %q: %w", b, err)
			}
		}
	}

	tb.Cleanup = func() error {
		for _, b := range buckets {
			for obj := range client.ListObjects(ctx, b, minio.ListObjectsOptions{Recursive: true}) {
				if obj.Err != nil {
					continue
				}
				_ = client.RemoveObject(ctx, b, obj.Key, minio.RemoveObjectOptions{})
			}
			if err := client.RemoveBucket(ctx, b); err != nil {
				return fmt.Errorf("could not remove bucket %q: %w", b, err)
			}
		}
		return nil
	}
	return tb, nil
}

// ReadObject returns the content of a stored object.
func ReadObject(ctx context.Context, client *minio.Client, bucket, key string) ([]byte, error) {
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = obj.Close() }()
	return io.ReadAll(obj)
}

// ObjectExists reports whether key is in bucket.
func ObjectExists(ctx context.Context, client *minio.Client, bucket, key string) bool {
	_, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	return err == nil
}
