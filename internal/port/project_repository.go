package port

import (
	"context"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// ProjectRepository persists saved project snapshots.
type ProjectRepository interface {
	Save(ctx context.Context, p *model.SavedProject) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.SavedProject, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListSavedBefore(ctx context.Context, cutoff time.Time) ([]*model.SavedProject, error)
}
