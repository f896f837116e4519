package worker

import (
	"context"
	"errors"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

var ErrMissingProjectID = errors.New("export manifest has no project id")

// ExportManifestHandler handles an export-manifest task by storing the
// manifest of a finished export.
func ExportManifestHandler(ctx context.Context, m model.ExportManifest, svc port.ManifestWriter) error {
	if m.ProjectID == uuid.Nil {
		logger.Errorf(ctx, "❌  Invalid export manifest: %v", ErrMissingProjectID)
		return ErrMissingProjectID
	}

	if err := svc.WriteManifest(ctx, m); err != nil {
		logger.Errorf(ctx, "❌  Failed to write export manifest of project #%s: %v", m.ProjectID, err)
		return err
	}

	logger.Infof(ctx, "✅  Stored export manifest of project #%s at revision %d", m.ProjectID, m.Revision)
	return nil
}
