package port

import (
	"context"

	"github.com/fhuszti/studio-ms-go/internal/model"
)

// TaskDispatcher enqueues work for the background worker.
type TaskDispatcher interface {
	EnqueueExportManifest(ctx context.Context, m model.ExportManifest) error
}
