package port

import (
	"context"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// Cache keeps the rendered JSON of saved projects and its ETag.
type Cache interface {
	GetSavedProject(ctx context.Context, id uuid.UUID) ([]byte, error)
	GetEtagSavedProject(ctx context.Context, id uuid.UUID) (string, error)
	SetSavedProject(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration)
	SetEtagSavedProject(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration)
	DeleteSavedProject(ctx context.Context, id uuid.UUID) error
	DeleteEtagSavedProject(ctx context.Context, id uuid.UUID) error
}
