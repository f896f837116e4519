package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/studio-ms-go/internal/api_context"
	"github.com/fhuszti/studio-ms-go/internal/project"
	"github.com/fhuszti/studio-ms-go/internal/recorder"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

func TestRegistry_CreateGetDelete(t *testing.T) {
	r := NewRegistry(nil)

	ws := r.Create()
	if ws.ID == uuid.Nil {
		t.Fatal("Create returned nil id")
	}
	if n := len(ws.Project.Snapshot().Scenes); n != 1 {
		t.Errorf("bootstrap scenes = %d; want 1", n)
	}

	got, err := r.Get(ws.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != ws {
		t.Error("Get returned a different workspace")
	}

	if ws.Context().Err() != nil {
		t.Fatal("context cancelled while registered")
	}
	if pid, ok := api_context.ProjectIDFromContext(ws.Context()); !ok || pid != ws.ID {
		t.Errorf("context project = %v, %v; want %v", pid, ok, ws.ID)
	}

	if !r.Delete(ws.ID) {
		t.Error("Delete = false; want true")
	}
	if ws.Context().Err() == nil {
		t.Error("context still live after Delete")
	}
	if r.Delete(ws.ID) {
		t.Error("second Delete = true; want false")
	}
	if _, err := r.Get(ws.ID); !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("err = %v; want ErrWorkspaceNotFound", err)
	}
}

func TestRegistry_PutReplaces(t *testing.T) {
	r := NewRegistry(nil)
	ws := r.Create()

	p := project.New()
	p.SetScript("restored")
	r.Put(ws.ID, p)
	if ws.Context().Err() == nil {
		t.Error("replaced workspace context still live")
	}

	got, _ := r.Get(ws.ID)
	if got.Project.Script() != "restored" {
		t.Errorf("script = %q; want restored", got.Project.Script())
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d; want 1", r.Len())
	}
}

func TestRegistry_DevicePerWorkspace(t *testing.T) {
	r := NewRegistry(func() recorder.Device { return recorder.NewBufferDevice("") })
	a, b := r.Create(), r.Create()
	ctx := context.Background()

	if err := a.Recorder.Start(ctx); err != nil {
		t.Fatalf("Start a: %v", err)
	}
	if err := b.Recorder.Start(ctx); err != nil {
		t.Fatalf("Start b: %v", err)
	}
}

func TestRegistry_DefaultDeviceUnavailable(t *testing.T) {
	ws := NewRegistry(nil).Create()
	if err := ws.Recorder.Start(context.Background()); !errors.Is(err, recorder.ErrDeviceUnavailable) {
		t.Errorf("err = %v; want ErrDeviceUnavailable", err)
	}
}

func TestRegistry_Close(t *testing.T) {
	r := NewRegistry(nil)
	a, b := r.Create(), r.Create()
	r.Close()
	if a.Context().Err() == nil || b.Context().Err() == nil {
		t.Error("Close left a context live")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d; want 0", r.Len())
	}
}
