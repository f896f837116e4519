package cache

import (
	"context"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetSavedProject(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagSavedProject(ctx context.Context, id uuid.UUID) (string, error) {
	return "", nil
}

func (n *NoopCache) SetSavedProject(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
}

func (n *NoopCache) SetEtagSavedProject(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration) {
}

func (n *NoopCache) DeleteSavedProject(ctx context.Context, id uuid.UUID) error { return nil }

func (n *NoopCache) DeleteEtagSavedProject(ctx context.Context, id uuid.UUID) error {
	return nil
}
