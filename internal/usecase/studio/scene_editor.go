package studio

import (
	"context"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

type sceneEditorSrv struct {
	ws port.Workspaces
}

// NewSceneEditor constructs a SceneEditor implementation. Errors from the
// project are returned unwrapped so callers can match them.
func NewSceneEditor(ws port.Workspaces) port.SceneEditor {
	return &sceneEditorSrv{ws: ws}
}

func (s *sceneEditorSrv) AddScene(ctx context.Context, id uuid.UUID) (model.Scene, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.Scene{}, err
	}
	return w.Project.AddScene(), nil
}

func (s *sceneEditorSrv) RemoveScene(ctx context.Context, id uuid.UUID, sceneID string) error {
	w, err := s.ws.Get(id)
	if err != nil {
		return err
	}
	return w.Project.RemoveScene(sceneID)
}

// MoveScene returns the storyboard after the move.
func (s *sceneEditorSrv) MoveScene(ctx context.Context, id uuid.UUID, from, to int) ([]model.Scene, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return nil, err
	}
	if err := w.Project.MoveScene(from, to); err != nil {
		return nil, err
	}
	return w.Project.Snapshot().Scenes, nil
}

func (s *sceneEditorSrv) UpdateScene(ctx context.Context, id uuid.UUID, sceneID string, patch model.ScenePatch) (model.Scene, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.Scene{}, err
	}
	return w.Project.UpdateScene(sceneID, patch)
}

func (s *sceneEditorSrv) AttachAsset(ctx context.Context, id uuid.UUID, sceneID, assetID string) (model.AssetRef, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.AssetRef{}, err
	}
	return w.Project.AttachAssetByID(sceneID, assetID)
}

func (s *sceneEditorSrv) DetachAsset(ctx context.Context, id uuid.UUID, sceneID string, index int) (model.AssetRef, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.AssetRef{}, err
	}
	return w.Project.DetachAsset(sceneID, index)
}
