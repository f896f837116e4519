package mock

import (
	"context"
	"io"
	"sync"
	"time"
)

// Storage implements the storage interface for tests. Saved files are kept
// in memory under "<bucket>/<key>".
type Storage struct {
	mu sync.Mutex

	// stored values
	ExistsOut bool
	Saved     map[string][]byte
	Removed   []string

	// captured inputs
	Bucket       string
	ObjectKey    string
	ContentType  string
	TTL          time.Duration
	DownloadName string

	// errors
	InitBucketErr           error
	GenerateDownloadLinkErr error
	RemoveErr               error
	SaveErr                 error
	FileExistsErr           error

	// call flags
	InitBucketCalled           bool
	GenerateDownloadLinkCalled bool
	RemoveCalled               bool
	SaveCalled                 bool
	FileExistsCalled           bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration, downloadName string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateDownloadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.TTL = expiry
	m.DownloadName = downloadName
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	return "https://example.com/download", nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalled = true
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.Removed = append(m.Removed, bucket+"/"+fileKey)
	delete(m.Saved, bucket+"/"+fileKey)
	return nil
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.ContentType = contentType
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if m.Saved == nil {
		m.Saved = make(map[string][]byte)
	}
	m.Saved[bucket+"/"+fileKey] = data
	return nil
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FileExistsCalled = true
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	if _, ok := m.Saved[bucket+"/"+fileKey]; ok {
		return true, nil
	}
	return m.ExistsOut, nil
}

// Object returns a saved file and whether it exists.
func (m *Storage) Object(bucket, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.Saved[bucket+"/"+key]
	return b, ok
}
