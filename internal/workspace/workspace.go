// Package workspace keeps the live projects of the running process.
package workspace

import (
	"context"
	"errors"
	"sync"

	"github.com/fhuszti/studio-ms-go/internal/api_context"
	"github.com/fhuszti/studio-ms-go/internal/progress"
	"github.com/fhuszti/studio-ms-go/internal/project"
	"github.com/fhuszti/studio-ms-go/internal/recorder"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

var ErrWorkspaceNotFound = errors.New("workspace: not found")

const (
	AssistStep = 5
	ExportStep = 3
)

// Workspace is one editing session: the project and the jobs attached to it.
type Workspace struct {
	ID       uuid.UUID
	Project  *project.Project
	Assist   *progress.Task
	Export   *progress.Task
	Recorder *recorder.Recorder

	ctx    context.Context
	cancel context.CancelFunc
}

// Context lives as long as the workspace is registered. Jobs started for the
// workspace run under it and carry the project id for logging.
func (w *Workspace) Context() context.Context {
	return w.ctx
}

func (w *Workspace) close() {
	w.cancel()
}

// DeviceFactory hands each new workspace its own capture device.
type DeviceFactory func() recorder.Device

type Registry struct {
	mu         sync.RWMutex
	workspaces map[uuid.UUID]*Workspace
	newDevice  DeviceFactory
}

func NewRegistry(newDevice DeviceFactory) *Registry {
	if newDevice == nil {
		newDevice = func() recorder.Device { return recorder.UnavailableDevice{} }
	}
	return &Registry{
		workspaces: make(map[uuid.UUID]*Workspace),
		newDevice:  newDevice,
	}
}

// Create registers a fresh project under a new id.
func (r *Registry) Create() *Workspace {
	return r.Put(uuid.NewUUID(), project.New())
}

// Put registers p under id. A workspace already there is replaced and its
// running jobs are cancelled.
func (r *Registry) Put(id uuid.UUID, p *project.Project) *Workspace {
	ctx, cancel := context.WithCancel(api_context.WithProjectID(context.Background(), id))
	ws := &Workspace{
		ID:       id,
		Project:  p,
		Assist:   progress.New("assist", AssistStep),
		Export:   progress.New("export", ExportStep),
		Recorder: recorder.New(r.newDevice()),
		ctx:      ctx,
		cancel:   cancel,
	}
	r.mu.Lock()
	old, replaced := r.workspaces[id]
	r.workspaces[id] = ws
	r.mu.Unlock()
	if replaced {
		old.close()
	}
	return ws
}

func (r *Registry) Get(id uuid.UUID) (*Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.workspaces[id]
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	return ws, nil
}

// Delete reports whether a workspace was removed. Its jobs are cancelled.
func (r *Registry) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	ws, ok := r.workspaces[id]
	delete(r.workspaces, id)
	r.mu.Unlock()
	if ok {
		ws.close()
	}
	return ok
}

// Close cancels every workspace, used on shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ws := range r.workspaces {
		ws.close()
		delete(r.workspaces, id)
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workspaces)
}
