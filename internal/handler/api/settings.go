package api

import (
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

// UpdateBrandingRequest carries no logo: logos are uploaded on their own route.
type UpdateBrandingRequest struct {
	WatermarkEnabled *bool   `json:"watermark_enabled"`
	WatermarkText    *string `json:"watermark_text" validate:"omitempty,max=120"`
	ClearLogo        bool    `json:"clear_logo"`
}

func UpdateBrandingHandler(svc port.SettingsEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		var req UpdateBrandingRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		b, err := svc.UpdateBranding(r.Context(), id, model.BrandingPatch{
			WatermarkEnabled: req.WatermarkEnabled,
			WatermarkText:    req.WatermarkText,
			ClearLogo:        req.ClearLogo,
		})
		if err != nil {
			writeUseCaseError(w, "could not update branding", err)
			return
		}

		RespondJSON(w, http.StatusOK, b)
		logger.Infof(r.Context(), "✅  Updated branding of project #%s", id)
	}
}

func UploadLogoHandler(svc port.SettingsEditor, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		in, cleanup, ok := readUpload(w, r, maxBytes)
		if !ok {
			return
		}
		defer cleanup()

		b, err := svc.UploadLogo(r.Context(), id, in)
		if err != nil {
			writeUseCaseError(w, "could not upload logo", err)
			return
		}

		RespondJSON(w, http.StatusOK, b)
		logger.Infof(r.Context(), "✅  Uploaded logo %q", in.Name)
	}
}

type UpdateExportOptionsRequest struct {
	Resolution       *model.Resolution `json:"resolution" validate:"omitempty,resolution"`
	Format           *model.Format     `json:"format" validate:"omitempty,format"`
	FPS              *int              `json:"fps" validate:"omitempty,fps"`
	IncludeWatermark *bool             `json:"include_watermark"`
}

func UpdateExportOptionsHandler(svc port.SettingsEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		var req UpdateExportOptionsRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		out, err := svc.UpdateExportOptions(r.Context(), id, model.ExportOptionsPatch{
			Resolution:       req.Resolution,
			Format:           req.Format,
			FPS:              req.FPS,
			IncludeWatermark: req.IncludeWatermark,
		})
		if err != nil {
			writeUseCaseError(w, "could not update export options", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  %s", out.Summary)
	}
}
