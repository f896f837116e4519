package studio

import (
	"context"
	"fmt"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
	"github.com/fhuszti/studio-ms-go/internal/workspace"
)

type projectManagerSrv struct {
	ws    port.Workspaces
	repo  port.ProjectRepository
	cache port.Cache
	upl   uploader
}

// NewProjectManager constructs a ProjectManager implementation.
func NewProjectManager(ws port.Workspaces, repo port.ProjectRepository, cache port.Cache, strg port.Storage, cfg Config) port.ProjectManager {
	return &projectManagerSrv{
		ws:    ws,
		repo:  repo,
		cache: cache,
		upl:   uploader{strg: strg, repo: repo, cfg: cfg.withDefaults()},
	}
}

// CreateProject registers a new project holding the bootstrap scene.
func (s *projectManagerSrv) CreateProject(ctx context.Context) (port.ProjectOutput, error) {
	w := s.ws.Create()
	logger.Infof(ctx, "✅  created project #%s", w.ID)
	return output(w), nil
}

func (s *projectManagerSrv) GetProject(ctx context.Context, id uuid.UUID) (port.ProjectOutput, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return port.ProjectOutput{}, err
	}
	return output(w), nil
}

func (s *projectManagerSrv) GetPreview(ctx context.Context, id uuid.UUID) (model.Preview, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.Preview{}, err
	}
	return w.Project.Preview(), nil
}

// DeleteProject drops the live workspace, then its saved snapshot, cache
// entries and every stored file either of them referred to. Only live
// projects can be deleted.
func (s *projectManagerSrv) DeleteProject(ctx context.Context, id uuid.UUID) error {
	w, err := s.ws.Get(id)
	if err != nil {
		return err
	}
	live := w.Project.Snapshot().ObjectKeys()
	saved, _ := s.upl.savedKeys(ctx, id)

	if !s.ws.Delete(id) {
		return workspace.ErrWorkspaceNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete saved project: %w", err)
	}
	evict(ctx, s.cache, id)
	for k := range saved {
		live[k] = struct{}{}
	}
	s.upl.sweep(ctx, live)
	return nil
}

func (s *projectManagerSrv) SetScript(ctx context.Context, id uuid.UUID, script string) error {
	w, err := s.ws.Get(id)
	if err != nil {
		return err
	}
	w.Project.SetScript(script)
	return nil
}

func output(w *workspace.Workspace) port.ProjectOutput {
	snap, rev := w.Project.SnapshotAt()
	return port.ProjectOutput{ID: w.ID, Revision: rev, Snapshot: snap}
}

func evict(ctx context.Context, cache port.Cache, id uuid.UUID) {
	if err := cache.DeleteSavedProject(ctx, id); err != nil {
		logger.Warnf(ctx, "⚠️  failed deleting cache for project #%s: %v", id, err)
	}
	if err := cache.DeleteEtagSavedProject(ctx, id); err != nil {
		logger.Warnf(ctx, "⚠️  failed deleting etag cache for project #%s: %v", id, err)
	}
}
