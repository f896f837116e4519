package api

import (
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

func CreateProjectHandler(svc port.ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.CreateProject(r.Context())
		if err != nil {
			writeUseCaseError(w, "could not create project", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully created project #%s", out.ID)
	}
}

// GetProjectHandler answers with the live snapshot. The ETag follows the
// content, so clients revalidate with If-None-Match.
func GetProjectHandler(renderer port.HTTPRenderer, svc port.ProjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		raw, etag, err := renderer.RenderProject(r.Context(), svc, id)
		if err != nil {
			writeUseCaseError(w, "could not get project", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Infof(r.Context(), "✅  Project #%s not modified", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Infof(r.Context(), "✅  Successfully returned project #%s", id)
	}
}

func DeleteProjectHandler(svc port.ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteProject(r.Context(), id); err != nil {
			writeUseCaseError(w, "could not delete project", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted project #%s", id)
	}
}

func GetPreviewHandler(svc port.ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		out, err := svc.GetPreview(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, "could not build preview", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
	}
}

type SetScriptRequest struct {
	Script *string `json:"script" validate:"required"`
}

func SetScriptHandler(svc port.ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		var req SetScriptRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := svc.SetScript(r.Context(), id, *req.Script); err != nil {
			writeUseCaseError(w, "could not set script", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Updated script of project #%s", id)
	}
}
