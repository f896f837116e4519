package studio

import (
	"context"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

type settingsEditorSrv struct {
	ws  port.Workspaces
	upl uploader
}

// NewSettingsEditor constructs a SettingsEditor implementation.
func NewSettingsEditor(ws port.Workspaces, repo port.ProjectRepository, strg port.Storage, opt port.FileOptimiser, cfg Config) port.SettingsEditor {
	return &settingsEditorSrv{ws: ws, upl: uploader{strg: strg, opt: opt, repo: repo, cfg: cfg.withDefaults()}}
}

// UpdateBranding applies the patch. A cleared logo is also removed from
// storage when the saved snapshot does not use it.
func (s *settingsEditorSrv) UpdateBranding(ctx context.Context, id uuid.UUID, patch model.BrandingPatch) (model.Branding, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.Branding{}, err
	}
	// logos only arrive through UploadLogo
	patch.Logo = nil
	prev := w.Project.Branding()
	next := w.Project.UpdateBranding(patch)
	if prev.Logo != nil && next.Logo == nil {
		s.upl.release(ctx, id, prev.Logo.Payload, prev.Logo.Thumbnail)
	}
	return next, nil
}

// UploadLogo stores an image and makes it the project logo, replacing the
// previous one.
func (s *settingsEditorSrv) UploadLogo(ctx context.Context, id uuid.UUID, in port.UploadInput) (model.Branding, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.Branding{}, err
	}
	if !model.KindImage.Accepts(in.MimeType) {
		return model.Branding{}, ErrMimeTypeMismatch
	}

	fd, err := s.upl.store(ctx, id, folderLogo, in, true)
	if err != nil {
		return model.Branding{}, err
	}
	prev := w.Project.Branding()
	next := w.Project.UpdateBranding(model.BrandingPatch{Logo: &fd})
	if prev.Logo != nil {
		s.upl.release(ctx, id, prev.Logo.Payload, prev.Logo.Thumbnail)
	}
	return next, nil
}

func (s *settingsEditorSrv) UpdateExportOptions(ctx context.Context, id uuid.UUID, patch model.ExportOptionsPatch) (port.ExportOptionsOutput, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return port.ExportOptionsOutput{}, err
	}
	opts, err := w.Project.UpdateExportOptions(patch)
	if err != nil {
		return port.ExportOptionsOutput{}, err
	}
	return port.ExportOptionsOutput{Options: opts, Summary: opts.Describe()}, nil
}
