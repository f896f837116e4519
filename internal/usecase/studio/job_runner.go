package studio

import (
	"context"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/progress"
	"github.com/fhuszti/studio-ms-go/internal/project"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
	"github.com/fhuszti/studio-ms-go/internal/workspace"
)

type jobRunnerSrv struct {
	ws   port.Workspaces
	disp port.TaskDispatcher
	cfg  Config
	now  func() time.Time
}

// NewJobRunner constructs a JobRunner implementation. Jobs run under the
// workspace context, so they stop when the project is deleted or replaced.
func NewJobRunner(ws port.Workspaces, disp port.TaskDispatcher, cfg Config) port.JobRunner {
	return &jobRunnerSrv{ws: ws, disp: disp, cfg: cfg.withDefaults(), now: time.Now}
}

// StartAssist fills a blank script with the fallback draft once the job
// reaches 100%.
func (s *jobRunnerSrv) StartAssist(ctx context.Context, id uuid.UUID) (progress.Status, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return progress.Status{}, err
	}
	_, err = w.Assist.Start(w.Context(), s.cfg.AssistTick, func(ctx context.Context) {
		if w.Project.ReplaceScriptIfBlank(project.AssistFallbackScript) {
			logger.Info(ctx, "✅  AI-assist wrote the script draft")
			return
		}
		logger.Info(ctx, "AI-assist finished, script left untouched")
	})
	if err != nil {
		return progress.Status{}, err
	}
	return w.Assist.Status(), nil
}

func (s *jobRunnerSrv) AssistStatus(ctx context.Context, id uuid.UUID) (progress.Status, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return progress.Status{}, err
	}
	return w.Assist.Status(), nil
}

// StartExport hands a manifest of the final state to the worker once the job
// reaches 100%.
func (s *jobRunnerSrv) StartExport(ctx context.Context, id uuid.UUID) (port.ExportOutput, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return port.ExportOutput{}, err
	}
	_, err = w.Export.Start(w.Context(), s.cfg.ExportTick, func(ctx context.Context) {
		s.dispatchManifest(ctx, w)
	})
	if err != nil {
		return port.ExportOutput{}, err
	}
	return exportOutput(w), nil
}

func (s *jobRunnerSrv) ExportStatus(ctx context.Context, id uuid.UUID) (port.ExportOutput, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return port.ExportOutput{}, err
	}
	return exportOutput(w), nil
}

func (s *jobRunnerSrv) dispatchManifest(ctx context.Context, w *workspace.Workspace) {
	snap, rev := w.Project.SnapshotAt()
	m := model.ExportManifest{
		ProjectID:  w.ID,
		Revision:   rev,
		Snapshot:   snap,
		Preview:    snap.Preview(),
		FinishedAt: s.now().UTC(),
	}
	if err := s.disp.EnqueueExportManifest(ctx, m); err != nil {
		logger.Errorf(ctx, "❌  failed to enqueue export manifest for revision %d: %v", rev, err)
		return
	}
	logger.Infof(ctx, "✅  export finished, manifest for revision %d enqueued", rev)
}

func exportOutput(w *workspace.Workspace) port.ExportOutput {
	return port.ExportOutput{
		Status:  w.Export.Status(),
		Summary: w.Project.ExportOptions().Describe(),
	}
}
