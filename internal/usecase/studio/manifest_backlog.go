package studio

import (
	"context"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

// backlogAge keeps the backlog away from saves the worker may still be handling.
const backlogAge = time.Hour

type manifestBacklogSrv struct {
	repo   port.ProjectRepository
	strg   port.Storage
	tasks  port.TaskDispatcher
	bucket string
	now    func() time.Time
}

// compile-time check: *manifestBacklogSrv must satisfy port.ManifestBacklog
var _ port.ManifestBacklog = (*manifestBacklogSrv)(nil)

// NewManifestBacklog constructs a ManifestBacklog implementation.
func NewManifestBacklog(repo port.ProjectRepository, strg port.Storage, tasks port.TaskDispatcher, bucket string) port.ManifestBacklog {
	return &manifestBacklogSrv{repo: repo, strg: strg, tasks: tasks, bucket: bucket, now: time.Now}
}

// PublishBacklog looks for projects saved more than an hour ago whose saved
// revision has no manifest in the exports bucket, and enqueues one for each.
func (s *manifestBacklogSrv) PublishBacklog(ctx context.Context) error {
	saved, err := s.repo.ListSavedBefore(ctx, s.now().Add(-backlogAge))
	if err != nil {
		return err
	}

	enqueued := 0
	for _, p := range saved {
		m := model.ExportManifest{
			ProjectID:  p.ID,
			Revision:   p.Revision,
			Snapshot:   p.Snapshot,
			Preview:    p.Snapshot.Preview(),
			FinishedAt: p.UpdatedAt.UTC(),
		}
		exists, err := s.strg.FileExists(ctx, s.bucket, m.ObjectKey())
		if err != nil {
			logger.Warnf(ctx, "failed to check manifest %q: %v", m.ObjectKey(), err)
			continue
		}
		if exists {
			continue
		}
		logger.Infof(ctx, "enqueueing manifest for project #%s at revision %d", p.ID, p.Revision)
		if err := s.tasks.EnqueueExportManifest(ctx, m); err != nil {
			logger.Warnf(ctx, "failed to enqueue manifest for project #%s: %v", p.ID, err)
			continue
		}
		enqueued++
	}

	if enqueued == 0 {
		logger.Info(ctx, "no manifests missing from the backlog")
	}
	return nil
}
