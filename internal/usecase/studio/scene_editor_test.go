package studio

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/project"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
	"github.com/fhuszti/studio-ms-go/internal/workspace"
)

func titles(scenes []model.Scene) []string {
	out := make([]string, len(scenes))
	for i, s := range scenes {
		out[i] = s.Title
	}
	return out
}

func TestSceneEditor_Storyboard(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()
	svc := NewSceneEditor(reg)
	w := reg.Create()
	intro := w.Project.Snapshot().Scenes[0]

	s2, err := svc.AddScene(ctx, w.ID)
	if err != nil {
		t.Fatalf("AddScene: %v", err)
	}
	if s2.Title != "Scene 2" || s2.Transition != model.TransitionCut {
		t.Errorf("added %+v", s2)
	}

	scenes, err := svc.MoveScene(ctx, w.ID, 1, 0)
	if err != nil {
		t.Fatalf("MoveScene: %v", err)
	}
	if got := titles(scenes); len(got) != 2 || got[0] != "Scene 2" || got[1] != "Intro" {
		t.Errorf("after move = %v", got)
	}

	if _, err := svc.MoveScene(ctx, w.ID, 0, 5); !errors.Is(err, project.ErrIndexOutOfRange) {
		t.Errorf("MoveScene out of range err = %v", err)
	}

	if err := svc.RemoveScene(ctx, w.ID, intro.ID); err != nil {
		t.Fatalf("RemoveScene: %v", err)
	}
	if got := titles(w.Project.Snapshot().Scenes); len(got) != 1 || got[0] != "Scene 2" {
		t.Errorf("after remove = %v", got)
	}
	if err := svc.RemoveScene(ctx, w.ID, intro.ID); !errors.Is(err, project.ErrSceneNotFound) {
		t.Errorf("second RemoveScene err = %v", err)
	}
}

func TestSceneEditor_UpdateScene(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()
	svc := NewSceneEditor(reg)
	w := reg.Create()
	id := w.Project.Snapshot().Scenes[0].ID

	d := 200.0
	title := "Opening"
	got, err := svc.UpdateScene(ctx, w.ID, id, model.ScenePatch{DurationSeconds: &d, Title: &title})
	if err != nil {
		t.Fatalf("UpdateScene: %v", err)
	}
	if got.DurationSeconds != 120 || got.Title != "Opening" {
		t.Errorf("updated = %+v", got)
	}

	bad := model.Transition("wipe")
	if _, err := svc.UpdateScene(ctx, w.ID, id, model.ScenePatch{Transition: &bad, Title: &title}); !errors.Is(err, project.ErrInvalidTransition) {
		t.Errorf("bad transition err = %v", err)
	}
}

func TestSceneEditor_AttachDetach(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()
	svc := NewSceneEditor(reg)
	w := reg.Create()
	sceneID := w.Project.Snapshot().Scenes[0].ID
	a, _ := w.Project.AddAsset(model.KindImage, model.FileDescriptor{Name: "a.png", MimeType: "image/png"})

	ref, err := svc.AttachAsset(ctx, w.ID, sceneID, a.ID)
	if err != nil {
		t.Fatalf("AttachAsset: %v", err)
	}
	if ref != a.Ref() {
		t.Errorf("ref = %+v; want %+v", ref, a.Ref())
	}
	if _, err := svc.AttachAsset(ctx, w.ID, sceneID, "missing"); !errors.Is(err, project.ErrAssetNotFound) {
		t.Errorf("unknown asset err = %v", err)
	}

	got, err := svc.DetachAsset(ctx, w.ID, sceneID, 0)
	if err != nil || got != ref {
		t.Errorf("DetachAsset = %+v, %v", got, err)
	}
	if _, err := svc.DetachAsset(ctx, w.ID, sceneID, 0); !errors.Is(err, project.ErrIndexOutOfRange) {
		t.Errorf("empty detach err = %v", err)
	}
}

func TestSceneEditor_UnknownProject(t *testing.T) {
	svc := NewSceneEditor(newRegistry())
	if _, err := svc.AddScene(context.Background(), uuid.NewUUID()); !errors.Is(err, workspace.ErrWorkspaceNotFound) {
		t.Errorf("err = %v; want ErrWorkspaceNotFound", err)
	}
}
