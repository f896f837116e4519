package mock

import (
	"context"
	"database/sql"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// ProjectRepository implements port.ProjectRepository for tests. Saved
// projects are kept in memory.
type ProjectRepository struct {
	Saved map[uuid.UUID]model.SavedProject

	SaveErr   error
	GetErr    error
	DeleteErr error
	ListErr   error

	SaveCalled   bool
	GetCalled    bool
	DeleteCalled bool
	DeletedID    uuid.UUID
	ListCutoff   time.Time
}

func (r *ProjectRepository) Save(ctx context.Context, p *model.SavedProject) error {
	r.SaveCalled = true
	if r.SaveErr != nil {
		return r.SaveErr
	}
	if r.Saved == nil {
		r.Saved = make(map[uuid.UUID]model.SavedProject)
	}
	r.Saved[p.ID] = *p
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SavedProject, error) {
	r.GetCalled = true
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	p, ok := r.Saved[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.DeleteCalled = true
	r.DeletedID = id
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	delete(r.Saved, id)
	return nil
}

// ListSavedBefore returns every saved project whose UpdatedAt is before cutoff.
func (r *ProjectRepository) ListSavedBefore(ctx context.Context, cutoff time.Time) ([]*model.SavedProject, error) {
	r.ListCutoff = cutoff
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	var out []*model.SavedProject
	for _, p := range r.Saved {
		if p.UpdatedAt.Before(cutoff) {
			out = append(out, &p)
		}
	}
	return out, nil
}
