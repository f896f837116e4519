package port

import (
	"context"

	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// HTTPRenderer mediates between HTTP handlers and the project getters. It
// returns both the JSON representation of the result and an ETag derived from
// it.
type HTTPRenderer interface {
	// RenderProject always reads live state; nothing is cached.
	RenderProject(ctx context.Context, getter ProjectGetter, id uuid.UUID) ([]byte, string, error)
	// RenderSavedProject returns the cached JSON and ETag if available, or
	// executes the getter and caches the output otherwise.
	RenderSavedProject(ctx context.Context, getter SavedProjectGetter, id uuid.UUID) ([]byte, string, error)
}
