package studio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/project"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

type persisterSrv struct {
	ws    port.Workspaces
	repo  port.ProjectRepository
	cache port.Cache
	upl   uploader
}

// NewProjectPersister constructs a ProjectPersister implementation.
func NewProjectPersister(ws port.Workspaces, repo port.ProjectRepository, cache port.Cache, strg port.Storage, cfg Config) port.ProjectPersister {
	return &persisterSrv{
		ws:    ws,
		repo:  repo,
		cache: cache,
		upl:   uploader{strg: strg, repo: repo, cfg: cfg.withDefaults()},
	}
}

// SaveProject writes the current snapshot and evicts the cached copy of the
// previous one. Files only the previous snapshot still held are deleted.
func (s *persisterSrv) SaveProject(ctx context.Context, id uuid.UUID) (port.SaveOutput, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return port.SaveOutput{}, err
	}
	prev, known := s.upl.savedKeys(ctx, id)
	snap, rev := w.Project.SnapshotAt()
	if err := s.repo.Save(ctx, &model.SavedProject{ID: id, Revision: rev, Snapshot: snap}); err != nil {
		return port.SaveOutput{}, fmt.Errorf("failed to save project: %w", err)
	}
	evict(ctx, s.cache, id)
	if known {
		s.upl.sweep(ctx, prev, snap.ObjectKeys(), w.Project.Snapshot().ObjectKeys())
	}
	logger.Infof(ctx, "✅  saved project #%s at revision %d", id, rev)
	return port.SaveOutput{ID: id, Revision: rev}, nil
}

func (s *persisterSrv) GetSavedProject(ctx context.Context, id uuid.UUID) (*model.SavedProject, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSavedProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// RestoreProject replaces the live project with the last saved snapshot. Jobs
// running on the replaced workspace are cancelled, and files only the
// replaced project referred to are deleted.
func (s *persisterSrv) RestoreProject(ctx context.Context, id uuid.UUID) (port.ProjectOutput, error) {
	saved, err := s.GetSavedProject(ctx, id)
	if err != nil {
		return port.ProjectOutput{}, err
	}

	rev := saved.Revision
	var dropped map[string]struct{}
	if live, err := s.ws.Get(id); err == nil {
		snap, liveRev := live.Project.SnapshotAt()
		dropped = snap.ObjectKeys()
		rev = restoredRevision(liveRev, saved.Revision)
	}

	p, err := project.Restore(saved.Snapshot, rev)
	if err != nil {
		return port.ProjectOutput{}, err
	}
	w := s.ws.Put(id, p)
	s.upl.sweep(ctx, dropped, saved.Snapshot.ObjectKeys())
	logger.Infof(ctx, "✅  restored project #%s saved at revision %d as revision %d", id, saved.Revision, rev)
	return output(w), nil
}

// restoredRevision keeps revisions increasing across a restore. A live
// project still at the saved revision holds the saved state and keeps it.
func restoredRevision(live, saved uint64) uint64 {
	if live == saved {
		return saved
	}
	return max(live, saved) + 1
}
