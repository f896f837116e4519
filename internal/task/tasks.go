package task

import (
	"encoding/json"
	"fmt"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/hibiken/asynq"
)

const TypeExportManifest = "export:manifest"

// NewExportManifestTask creates an Asynq task carrying a finished export.
func NewExportManifestTask(m model.ExportManifest) (*asynq.Task, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("could not marshal export-manifest payload: %w", err)
	}
	return asynq.NewTask(TypeExportManifest, data, asynq.MaxRetry(5)), nil
}

// ParseExportManifestPayload parses the task payload back to a manifest.
func ParseExportManifestPayload(t *asynq.Task) (model.ExportManifest, error) {
	var m model.ExportManifest
	if err := json.Unmarshal(t.Payload(), &m); err != nil {
		return model.ExportManifest{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return m, nil
}
