package mock

import (
	"context"
	"io"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/progress"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// ProjectGetter implements port.ProjectGetter for tests.
type ProjectGetter struct {
	Out    port.ProjectOutput
	Err    error
	Called bool
}

func (m *ProjectGetter) GetProject(ctx context.Context, id uuid.UUID) (port.ProjectOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// SavedProjectGetter implements port.SavedProjectGetter for tests.
type SavedProjectGetter struct {
	Out    *model.SavedProject
	Err    error
	Called bool
	GotID  uuid.UUID
}

func (m *SavedProjectGetter) GetSavedProject(ctx context.Context, id uuid.UUID) (*model.SavedProject, error) {
	m.Called = true
	m.GotID = id
	return m.Out, m.Err
}

// ProjectManager implements port.ProjectManager for tests.
type ProjectManager struct {
	ProjectGetter

	CreateOut  port.ProjectOutput
	PreviewOut model.Preview

	CreateErr    error
	PreviewErr   error
	DeleteErr    error
	SetScriptErr error

	CreateCalled    bool
	PreviewCalled   bool
	DeleteCalled    bool
	SetScriptCalled bool

	GotID     uuid.UUID
	GotScript string
}

func (m *ProjectManager) CreateProject(ctx context.Context) (port.ProjectOutput, error) {
	m.CreateCalled = true
	return m.CreateOut, m.CreateErr
}

func (m *ProjectManager) GetPreview(ctx context.Context, id uuid.UUID) (model.Preview, error) {
	m.PreviewCalled = true
	m.GotID = id
	return m.PreviewOut, m.PreviewErr
}

func (m *ProjectManager) DeleteProject(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.GotID = id
	return m.DeleteErr
}

func (m *ProjectManager) SetScript(ctx context.Context, id uuid.UUID, script string) error {
	m.SetScriptCalled = true
	m.GotID = id
	m.GotScript = script
	return m.SetScriptErr
}

// SceneEditor implements port.SceneEditor for tests. Err is returned by every
// method.
type SceneEditor struct {
	SceneOut  model.Scene
	ScenesOut []model.Scene
	RefOut    model.AssetRef
	Err       error

	Called     string
	GotSceneID string
	GotPatch   model.ScenePatch
	GotFrom    int
	GotTo      int
	GotAssetID string
	GotIndex   int
}

func (m *SceneEditor) AddScene(ctx context.Context, id uuid.UUID) (model.Scene, error) {
	m.Called = "AddScene"
	return m.SceneOut, m.Err
}

func (m *SceneEditor) RemoveScene(ctx context.Context, id uuid.UUID, sceneID string) error {
	m.Called = "RemoveScene"
	m.GotSceneID = sceneID
	return m.Err
}

func (m *SceneEditor) MoveScene(ctx context.Context, id uuid.UUID, from, to int) ([]model.Scene, error) {
	m.Called = "MoveScene"
	m.GotFrom, m.GotTo = from, to
	return m.ScenesOut, m.Err
}

func (m *SceneEditor) UpdateScene(ctx context.Context, id uuid.UUID, sceneID string, patch model.ScenePatch) (model.Scene, error) {
	m.Called = "UpdateScene"
	m.GotSceneID = sceneID
	m.GotPatch = patch
	return m.SceneOut, m.Err
}

func (m *SceneEditor) AttachAsset(ctx context.Context, id uuid.UUID, sceneID, assetID string) (model.AssetRef, error) {
	m.Called = "AttachAsset"
	m.GotSceneID = sceneID
	m.GotAssetID = assetID
	return m.RefOut, m.Err
}

func (m *SceneEditor) DetachAsset(ctx context.Context, id uuid.UUID, sceneID string, index int) (model.AssetRef, error) {
	m.Called = "DetachAsset"
	m.GotSceneID = sceneID
	m.GotIndex = index
	return m.RefOut, m.Err
}

// SettingsEditor implements port.SettingsEditor for tests.
type SettingsEditor struct {
	BrandingOut model.Branding
	ExportOut   port.ExportOptionsOutput
	Err         error

	Called         string
	GotBranding    model.BrandingPatch
	GotExport      model.ExportOptionsPatch
	GotUpload      port.UploadInput
	GotUploadBytes []byte
}

func (m *SettingsEditor) UpdateBranding(ctx context.Context, id uuid.UUID, patch model.BrandingPatch) (model.Branding, error) {
	m.Called = "UpdateBranding"
	m.GotBranding = patch
	return m.BrandingOut, m.Err
}

func (m *SettingsEditor) UploadLogo(ctx context.Context, id uuid.UUID, in port.UploadInput) (model.Branding, error) {
	m.Called = "UploadLogo"
	m.GotUpload = in
	m.GotUploadBytes, _ = io.ReadAll(in.Reader)
	return m.BrandingOut, m.Err
}

func (m *SettingsEditor) UpdateExportOptions(ctx context.Context, id uuid.UUID, patch model.ExportOptionsPatch) (port.ExportOptionsOutput, error) {
	m.Called = "UpdateExportOptions"
	m.GotExport = patch
	return m.ExportOut, m.Err
}

// AssetManager implements port.AssetManager for tests.
type AssetManager struct {
	AssetOut model.Asset
	URLOut   port.AssetURLOutput
	Err      error

	Called         string
	GotKind        model.AssetKind
	GotIndex       int
	GotUpload      port.UploadInput
	GotUploadBytes []byte
}

func (m *AssetManager) UploadAsset(ctx context.Context, id uuid.UUID, kind model.AssetKind, in port.UploadInput) (model.Asset, error) {
	m.Called = "UploadAsset"
	m.GotKind = kind
	m.GotUpload = in
	m.GotUploadBytes, _ = io.ReadAll(in.Reader)
	return m.AssetOut, m.Err
}

func (m *AssetManager) RemoveAsset(ctx context.Context, id uuid.UUID, kind model.AssetKind, index int) error {
	m.Called = "RemoveAsset"
	m.GotKind = kind
	m.GotIndex = index
	return m.Err
}

func (m *AssetManager) GetAssetURL(ctx context.Context, id uuid.UUID, kind model.AssetKind, index int) (port.AssetURLOutput, error) {
	m.Called = "GetAssetURL"
	m.GotKind = kind
	m.GotIndex = index
	return m.URLOut, m.Err
}

// VoiceoverManager implements port.VoiceoverManager for tests.
type VoiceoverManager struct {
	VoiceoverOut model.Voiceover
	Err          error

	Called    string
	GotIndex  int
	GotUpload port.UploadInput
}

func (m *VoiceoverManager) UploadVoiceover(ctx context.Context, id uuid.UUID, in port.UploadInput) (model.Voiceover, error) {
	m.Called = "UploadVoiceover"
	m.GotUpload = in
	return m.VoiceoverOut, m.Err
}

func (m *VoiceoverManager) RemoveVoiceover(ctx context.Context, id uuid.UUID, index int) error {
	m.Called = "RemoveVoiceover"
	m.GotIndex = index
	return m.Err
}

// RecordingController implements port.RecordingController for tests.
type RecordingController struct {
	VoiceoverOut model.Voiceover

	StartErr  error
	AppendErr error
	StopErr   error

	Called   string
	Appended []byte
}

func (m *RecordingController) StartRecording(ctx context.Context, id uuid.UUID) error {
	m.Called = "StartRecording"
	return m.StartErr
}

func (m *RecordingController) AppendRecording(ctx context.Context, id uuid.UUID, r io.Reader) (int64, error) {
	m.Called = "AppendRecording"
	if m.AppendErr != nil {
		return 0, m.AppendErr
	}
	b, err := io.ReadAll(r)
	m.Appended = append(m.Appended, b...)
	return int64(len(b)), err
}

func (m *RecordingController) StopRecording(ctx context.Context, id uuid.UUID) (model.Voiceover, error) {
	m.Called = "StopRecording"
	return m.VoiceoverOut, m.StopErr
}

// JobRunner implements port.JobRunner for tests.
type JobRunner struct {
	StatusOut progress.Status
	ExportOut port.ExportOutput
	Err       error

	Called string
}

func (m *JobRunner) StartAssist(ctx context.Context, id uuid.UUID) (progress.Status, error) {
	m.Called = "StartAssist"
	return m.StatusOut, m.Err
}

func (m *JobRunner) AssistStatus(ctx context.Context, id uuid.UUID) (progress.Status, error) {
	m.Called = "AssistStatus"
	return m.StatusOut, m.Err
}

func (m *JobRunner) StartExport(ctx context.Context, id uuid.UUID) (port.ExportOutput, error) {
	m.Called = "StartExport"
	return m.ExportOut, m.Err
}

func (m *JobRunner) ExportStatus(ctx context.Context, id uuid.UUID) (port.ExportOutput, error) {
	m.Called = "ExportStatus"
	return m.ExportOut, m.Err
}

// ProjectPersister implements port.ProjectPersister for tests.
type ProjectPersister struct {
	SavedProjectGetter

	SaveOut    port.SaveOutput
	RestoreOut port.ProjectOutput

	SaveErr    error
	RestoreErr error

	SaveCalled    bool
	RestoreCalled bool
}

func (m *ProjectPersister) SaveProject(ctx context.Context, id uuid.UUID) (port.SaveOutput, error) {
	m.SaveCalled = true
	return m.SaveOut, m.SaveErr
}

func (m *ProjectPersister) RestoreProject(ctx context.Context, id uuid.UUID) (port.ProjectOutput, error) {
	m.RestoreCalled = true
	return m.RestoreOut, m.RestoreErr
}

// ManifestWriter implements port.ManifestWriter for tests.
type ManifestWriter struct {
	Err    error
	Called bool
	Got    model.ExportManifest
}

func (m *ManifestWriter) WriteManifest(ctx context.Context, manifest model.ExportManifest) error {
	m.Called = true
	m.Got = manifest
	return m.Err
}
