package studio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

type manifestWriterSrv struct {
	strg   port.Storage
	bucket string
}

// NewManifestWriter constructs a ManifestWriter storing into bucket.
func NewManifestWriter(strg port.Storage, bucket string) port.ManifestWriter {
	return &manifestWriterSrv{strg: strg, bucket: bucket}
}

func (s *manifestWriterSrv) WriteManifest(ctx context.Context, m model.ExportManifest) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	key := m.ObjectKey()
	if err := s.strg.SaveFile(ctx, s.bucket, key, bytes.NewReader(raw), int64(len(raw)), "application/json"); err != nil {
		return fmt.Errorf("failed to save manifest %q: %w", key, err)
	}
	logger.Infof(ctx, "✅  wrote export manifest %q (%s)", key, m.Preview.ExportSummary)
	return nil
}
