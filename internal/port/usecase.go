package port

import (
	"context"
	"io"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/progress"
	"github.com/fhuszti/studio-ms-go/internal/project"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
	"github.com/fhuszti/studio-ms-go/internal/workspace"
)

// Workspaces is the registry of live projects.
type Workspaces interface {
	Create() *workspace.Workspace
	Put(id uuid.UUID, p *project.Project) *workspace.Workspace
	Get(id uuid.UUID) (*workspace.Workspace, error)
	Delete(id uuid.UUID) bool
}

type ProjectOutput struct {
	ID       uuid.UUID      `json:"id"`
	Revision uint64         `json:"revision"`
	Snapshot model.Snapshot `json:"snapshot"`
}

// ProjectGetter reads the live state of a project.
type ProjectGetter interface {
	GetProject(ctx context.Context, id uuid.UUID) (ProjectOutput, error)
}

// ProjectManager creates, reads and drops projects.
type ProjectManager interface {
	ProjectGetter
	CreateProject(ctx context.Context) (ProjectOutput, error)
	GetPreview(ctx context.Context, id uuid.UUID) (model.Preview, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	SetScript(ctx context.Context, id uuid.UUID, script string) error
}

// SceneEditor edits the storyboard of a project.
type SceneEditor interface {
	AddScene(ctx context.Context, id uuid.UUID) (model.Scene, error)
	RemoveScene(ctx context.Context, id uuid.UUID, sceneID string) error
	MoveScene(ctx context.Context, id uuid.UUID, from, to int) ([]model.Scene, error)
	UpdateScene(ctx context.Context, id uuid.UUID, sceneID string, patch model.ScenePatch) (model.Scene, error)
	AttachAsset(ctx context.Context, id uuid.UUID, sceneID, assetID string) (model.AssetRef, error)
	DetachAsset(ctx context.Context, id uuid.UUID, sceneID string, index int) (model.AssetRef, error)
}

// UploadInput is one file received from a client.
type UploadInput struct {
	Name     string
	MimeType string
	Size     int64
	Reader   io.Reader
}

type ExportOptionsOutput struct {
	Options model.ExportOptions `json:"options"`
	Summary string              `json:"summary"`
}

// SettingsEditor replaces the branding and export records.
type SettingsEditor interface {
	UpdateBranding(ctx context.Context, id uuid.UUID, patch model.BrandingPatch) (model.Branding, error)
	UploadLogo(ctx context.Context, id uuid.UUID, in UploadInput) (model.Branding, error)
	UpdateExportOptions(ctx context.Context, id uuid.UUID, patch model.ExportOptionsPatch) (ExportOptionsOutput, error)
}

type AssetURLOutput struct {
	URL        string    `json:"url"`
	ValidUntil time.Time `json:"valid_until"`
}

// AssetManager stores uploads in the asset pool and in object storage.
type AssetManager interface {
	UploadAsset(ctx context.Context, id uuid.UUID, kind model.AssetKind, in UploadInput) (model.Asset, error)
	RemoveAsset(ctx context.Context, id uuid.UUID, kind model.AssetKind, index int) error
	GetAssetURL(ctx context.Context, id uuid.UUID, kind model.AssetKind, index int) (AssetURLOutput, error)
}

// VoiceoverManager stores uploaded voice clips.
type VoiceoverManager interface {
	UploadVoiceover(ctx context.Context, id uuid.UUID, in UploadInput) (model.Voiceover, error)
	RemoveVoiceover(ctx context.Context, id uuid.UUID, index int) error
}

// RecordingController drives the capture device of a project. Each
// start/stop cycle yields one voiceover.
type RecordingController interface {
	StartRecording(ctx context.Context, id uuid.UUID) error
	AppendRecording(ctx context.Context, id uuid.UUID, r io.Reader) (int64, error)
	StopRecording(ctx context.Context, id uuid.UUID) (model.Voiceover, error)
}

type ExportOutput struct {
	progress.Status
	Summary string `json:"summary"`
}

// JobRunner starts and reports the simulated AI-assist and export jobs.
type JobRunner interface {
	StartAssist(ctx context.Context, id uuid.UUID) (progress.Status, error)
	AssistStatus(ctx context.Context, id uuid.UUID) (progress.Status, error)
	StartExport(ctx context.Context, id uuid.UUID) (ExportOutput, error)
	ExportStatus(ctx context.Context, id uuid.UUID) (ExportOutput, error)
}

type SaveOutput struct {
	ID       uuid.UUID `json:"id"`
	Revision uint64    `json:"revision"`
}

// SavedProjectGetter reads the last persisted snapshot of a project.
type SavedProjectGetter interface {
	GetSavedProject(ctx context.Context, id uuid.UUID) (*model.SavedProject, error)
}

// ProjectPersister saves live projects and brings saved ones back.
type ProjectPersister interface {
	SavedProjectGetter
	SaveProject(ctx context.Context, id uuid.UUID) (SaveOutput, error)
	RestoreProject(ctx context.Context, id uuid.UUID) (ProjectOutput, error)
}

// ManifestWriter stores the manifest of a finished export.
type ManifestWriter interface {
	WriteManifest(ctx context.Context, m model.ExportManifest) error
}

// ManifestBacklog re-enqueues manifests that never reached the exports bucket.
type ManifestBacklog interface {
	PublishBacklog(ctx context.Context) error
}
