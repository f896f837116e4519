package mock

import (
	"context"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	SavedOut []byte

	// etag values
	EtagSaved string

	// captured inputs
	TTL time.Duration

	// errors
	GetSavedErr     error
	GetEtagSavedErr error
	DelSavedErr     error
	DelEtagSavedErr error

	// call flags
	GetSavedCalled     bool
	GetEtagSavedCalled bool
	SetSavedCalled     bool
	SetEtagSavedCalled bool
	DelSavedCalled     bool
	DelEtagSavedCalled bool
}

func (c *Cache) GetSavedProject(ctx context.Context, id uuid.UUID) ([]byte, error) {
	c.GetSavedCalled = true
	if c.GetSavedErr != nil {
		return nil, c.GetSavedErr
	}
	return c.SavedOut, nil
}

func (c *Cache) GetEtagSavedProject(ctx context.Context, id uuid.UUID) (string, error) {
	c.GetEtagSavedCalled = true
	if c.GetEtagSavedErr != nil {
		return "", c.GetEtagSavedErr
	}
	return c.EtagSaved, nil
}

func (c *Cache) SetSavedProject(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
	c.SetSavedCalled = true
	c.SavedOut = data
	c.TTL = ttl
}

func (c *Cache) SetEtagSavedProject(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration) {
	c.SetEtagSavedCalled = true
	c.EtagSaved = etag
}

func (c *Cache) DeleteSavedProject(ctx context.Context, id uuid.UUID) error {
	c.DelSavedCalled = true
	return c.DelSavedErr
}

func (c *Cache) DeleteEtagSavedProject(ctx context.Context, id uuid.UUID) error {
	c.DelEtagSavedCalled = true
	return c.DelEtagSavedErr
}
