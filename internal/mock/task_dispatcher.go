package mock

import (
	"context"
	"sync"

	"github.com/fhuszti/studio-ms-go/internal/model"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	mu sync.Mutex

	ExportCalled    bool
	ExportManifests []model.ExportManifest
	ExportErr       error
}

func (m *MockDispatcher) EnqueueExportManifest(ctx context.Context, manifest model.ExportManifest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExportCalled = true
	m.ExportManifests = append(m.ExportManifests, manifest)
	return m.ExportErr
}

// Manifests returns a copy of what was enqueued so far.
func (m *MockDispatcher) Manifests() []model.ExportManifest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ExportManifest(nil), m.ExportManifests...)
}
