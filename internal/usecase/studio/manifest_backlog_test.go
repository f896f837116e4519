package studio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/mock"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

func newBacklog(repo *mock.ProjectRepository, strg *mock.Storage, disp *mock.MockDispatcher, now time.Time) *manifestBacklogSrv {
	svc := NewManifestBacklog(repo, strg, disp, "exports").(*manifestBacklogSrv)
	svc.now = func() time.Time { return now }
	return svc
}

func TestManifestBacklog_EnqueuesMissingOnly(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-2 * time.Hour)
	missing, published, fresh := uuid.NewUUID(), uuid.NewUUID(), uuid.NewUUID()

	repo := &mock.ProjectRepository{Saved: map[uuid.UUID]model.SavedProject{
		missing:   {ID: missing, Revision: 3, Snapshot: model.Snapshot{Script: "Intro: a"}, UpdatedAt: old},
		published: {ID: published, Revision: 5, UpdatedAt: old},
		fresh:     {ID: fresh, Revision: 1, UpdatedAt: now.Add(-time.Minute)},
	}}
	strg := &mock.Storage{Saved: map[string][]byte{
		"exports/" + model.ExportManifest{ProjectID: published, Revision: 5}.ObjectKey(): []byte("{}"),
	}}
	disp := &mock.MockDispatcher{}

	if err := newBacklog(repo, strg, disp, now).PublishBacklog(context.Background()); err != nil {
		t.Fatalf("PublishBacklog: %v", err)
	}
	if !repo.ListCutoff.Equal(now.Add(-backlogAge)) {
		t.Errorf("cutoff = %v; want %v", repo.ListCutoff, now.Add(-backlogAge))
	}

	got := disp.Manifests()
	if len(got) != 1 {
		t.Fatalf("enqueued %d manifests; want 1", len(got))
	}
	m := got[0]
	if m.ProjectID != missing || m.Revision != 3 {
		t.Errorf("manifest = %s rev %d", m.ProjectID, m.Revision)
	}
	if !m.FinishedAt.Equal(old) || m.Preview.Text == "" {
		t.Errorf("manifest finished=%v preview=%+v", m.FinishedAt, m.Preview)
	}
}

func TestManifestBacklog_ListError(t *testing.T) {
	listErr := errors.New("db down")
	repo := &mock.ProjectRepository{ListErr: listErr}
	disp := &mock.MockDispatcher{}

	err := newBacklog(repo, &mock.Storage{}, disp, time.Now()).PublishBacklog(context.Background())
	if !errors.Is(err, listErr) {
		t.Fatalf("err = %v; want %v", err, listErr)
	}
	if disp.ExportCalled {
		t.Error("dispatcher called after list failure")
	}
}

func TestManifestBacklog_SkipsOnStorageAndDispatchErrors(t *testing.T) {
	now := time.Now()
	a, b := uuid.NewUUID(), uuid.NewUUID()
	repo := &mock.ProjectRepository{Saved: map[uuid.UUID]model.SavedProject{
		a: {ID: a, Revision: 1, UpdatedAt: now.Add(-3 * time.Hour)},
		b: {ID: b, Revision: 2, UpdatedAt: now.Add(-3 * time.Hour)},
	}}

	t.Run("exists check fails", func(t *testing.T) {
		disp := &mock.MockDispatcher{}
		strg := &mock.Storage{FileExistsErr: errors.New("minio down")}
		if err := newBacklog(repo, strg, disp, now).PublishBacklog(context.Background()); err != nil {
			t.Fatalf("PublishBacklog: %v", err)
		}
		if disp.ExportCalled {
			t.Error("enqueued without knowing whether the manifest exists")
		}
	})

	t.Run("enqueue fails", func(t *testing.T) {
		disp := &mock.MockDispatcher{ExportErr: errors.New("redis down")}
		if err := newBacklog(repo, &mock.Storage{}, disp, now).PublishBacklog(context.Background()); err != nil {
			t.Fatalf("PublishBacklog: %v", err)
		}
		if n := len(disp.Manifests()); n != 2 {
			t.Errorf("attempted %d enqueues; want 2", n)
		}
	})
}
