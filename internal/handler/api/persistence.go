package api

import (
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

func SaveProjectHandler(svc port.ProjectPersister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		out, err := svc.SaveProject(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, "could not save project", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Saved project #%s at revision %d", id, out.Revision)
	}
}

func RestoreProjectHandler(svc port.ProjectPersister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		out, err := svc.RestoreProject(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, "could not restore project", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Restored project #%s at revision %d", id, out.Revision)
	}
}

// GetSavedProjectHandler serves the persisted snapshot through the cache.
func GetSavedProjectHandler(renderer port.HTTPRenderer, svc port.SavedProjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		raw, etag, err := renderer.RenderSavedProject(r.Context(), svc, id)
		if err != nil {
			writeUseCaseError(w, "could not get saved project", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "private, max-age=60")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
	}
}
