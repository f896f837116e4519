package studio

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/project"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

type assetManagerSrv struct {
	ws  port.Workspaces
	upl uploader
	now func() time.Time
}

// NewAssetManager constructs an AssetManager implementation.
func NewAssetManager(ws port.Workspaces, repo port.ProjectRepository, strg port.Storage, opt port.FileOptimiser, cfg Config) port.AssetManager {
	return &assetManagerSrv{
		ws:  ws,
		upl: uploader{strg: strg, opt: opt, repo: repo, cfg: cfg.withDefaults()},
		now: time.Now,
	}
}

// UploadAsset stores the file, then adds it to the pool. Nothing is added
// when storage fails.
func (s *assetManagerSrv) UploadAsset(ctx context.Context, id uuid.UUID, kind model.AssetKind, in port.UploadInput) (model.Asset, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.Asset{}, err
	}
	if !kind.Valid() {
		return model.Asset{}, project.ErrInvalidKind
	}
	if !kind.Accepts(in.MimeType) {
		return model.Asset{}, ErrMimeTypeMismatch
	}

	fd, err := s.upl.store(ctx, id, string(kind), in, kind == model.KindImage)
	if err != nil {
		return model.Asset{}, err
	}
	a, err := w.Project.AddAsset(kind, fd)
	if err != nil {
		s.upl.remove(ctx, fd.Payload, fd.Thumbnail)
		return model.Asset{}, err
	}
	logger.Infof(ctx, "✅  added %s asset %q", kind, a.ID)
	return a, nil
}

// RemoveAsset drops the asset from the pool, then deletes its files unless the
// saved snapshot still holds the asset. Scenes keep their references.
func (s *assetManagerSrv) RemoveAsset(ctx context.Context, id uuid.UUID, kind model.AssetKind, index int) error {
	w, err := s.ws.Get(id)
	if err != nil {
		return err
	}
	a, err := w.Project.RemoveAsset(kind, index)
	if err != nil {
		return err
	}
	s.upl.release(ctx, id, a.Payload, a.Thumbnail)
	return nil
}

func (s *assetManagerSrv) GetAssetURL(ctx context.Context, id uuid.UUID, kind model.AssetKind, index int) (port.AssetURLOutput, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return port.AssetURLOutput{}, err
	}
	a, err := w.Project.Asset(kind, index)
	if err != nil {
		return port.AssetURLOutput{}, err
	}

	expiry := s.upl.cfg.DownloadURLExpiry
	url, err := s.upl.strg.GeneratePresignedDownloadURL(ctx, s.upl.cfg.AssetsBucket, a.Payload, expiry, a.Name)
	if err != nil {
		return port.AssetURLOutput{}, fmt.Errorf("failed to generate download url: %w", err)
	}
	return port.AssetURLOutput{URL: url, ValidUntil: s.now().Add(expiry).UTC()}, nil
}
