package model

import (
	"fmt"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// SavedProject is a persisted snapshot of a project.
type SavedProject struct {
	ID        uuid.UUID `json:"id"`
	Revision  uint64    `json:"revision"`
	Snapshot  Snapshot  `json:"snapshot"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExportManifest is what a finished export hands to the worker, which stores
// it next to the other exports of the project.
type ExportManifest struct {
	ProjectID  uuid.UUID `json:"project_id"`
	Revision   uint64    `json:"revision"`
	Snapshot   Snapshot  `json:"snapshot"`
	Preview    Preview   `json:"preview"`
	FinishedAt time.Time `json:"finished_at"`
}

// ObjectKey is where the manifest lands in the exports bucket. The snapshot
// digest keeps two states that share a revision number apart.
func (m ExportManifest) ObjectKey() string {
	return fmt.Sprintf("%s/%d-%s.json", m.ProjectID, m.Revision, m.Snapshot.Digest())
}
