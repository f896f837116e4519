package port

import (
	"context"
	"io"
	"time"
)

// Storage defines payload storage operations.
type Storage interface {
	InitBucket(bucket string) error
	SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, contentType string) error
	FileExists(ctx context.Context, bucket, fileKey string) (bool, error)
	RemoveFile(ctx context.Context, bucket, fileKey string) error
	GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration, downloadName string) (string, error)
}
