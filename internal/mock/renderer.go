package mock

import (
	"context"

	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	// stored values
	ProjectOut []byte
	SavedOut   []byte

	// etag values
	EtagProject string
	EtagSaved   string

	// captured inputs
	GotID uuid.UUID

	// errors
	ProjectErr error
	SavedErr   error

	// call flags
	ProjectCalled bool
	SavedCalled   bool
}

func (m *HTTPRenderer) RenderProject(ctx context.Context, getter port.ProjectGetter, id uuid.UUID) ([]byte, string, error) {
	m.ProjectCalled = true
	m.GotID = id
	return m.ProjectOut, m.EtagProject, m.ProjectErr
}

func (m *HTTPRenderer) RenderSavedProject(ctx context.Context, getter port.SavedProjectGetter, id uuid.UUID) ([]byte, string, error) {
	m.SavedCalled = true
	m.GotID = id
	return m.SavedOut, m.EtagSaved, m.SavedErr
}
