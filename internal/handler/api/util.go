package api

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/fhuszti/studio-ms-go/internal/api_context"
	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/progress"
	"github.com/fhuszti/studio-ms-go/internal/project"
	"github.com/fhuszti/studio-ms-go/internal/recorder"
	"github.com/fhuszti/studio-ms-go/internal/storage"
	"github.com/fhuszti/studio-ms-go/internal/usecase/studio"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
	"github.com/fhuszti/studio-ms-go/internal/validation"
	"github.com/fhuszti/studio-ms-go/internal/workspace"
	"github.com/go-chi/chi/v5"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// StatusFor maps use case errors to HTTP statuses. Anything unknown is a 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, workspace.ErrWorkspaceNotFound),
		errors.Is(err, project.ErrIndexOutOfRange),
		errors.Is(err, project.ErrSceneNotFound),
		errors.Is(err, project.ErrAssetNotFound),
		errors.Is(err, studio.ErrSavedProjectNotFound),
		errors.Is(err, storage.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrInvalidKind),
		errors.Is(err, project.ErrInvalidTransition),
		errors.Is(err, project.ErrInvalidDuration),
		errors.Is(err, project.ErrInvalidExportOptions):
		return http.StatusBadRequest
	case errors.Is(err, studio.ErrMimeTypeMismatch):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, progress.ErrAlreadyRunning),
		errors.Is(err, recorder.ErrAlreadyRecording),
		errors.Is(err, recorder.ErrNotRecording):
		return http.StatusConflict
	case errors.Is(err, recorder.ErrDeviceUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeUseCaseError answers with the mapped status. Client errors carry the
// error text; server errors only carry msg.
func writeUseCaseError(w http.ResponseWriter, msg string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		WriteError(w, status, msg, err)
		return
	}
	WriteError(w, status, err.Error(), nil)
}

func projectID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := api_context.ProjectIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusBadRequest, "project ID is required", nil)
	}
	return id, ok
}

func sceneID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := api_context.SceneIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusBadRequest, "scene ID is required", nil)
	}
	return id, ok
}

func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "index")
	i, err := strconv.Atoi(raw)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "index must be an integer", nil)
		return 0, false
	}
	return i, true
}

func kindParam(w http.ResponseWriter, r *http.Request) (model.AssetKind, bool) {
	kind, err := model.ParseAssetKind(chi.URLParam(r, "kind"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return "", false
	}
	return kind, true
}

// decodeAndValidate reads a JSON body into req and runs the struct
// validators. It has answered the request when it returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request payload", err)
		return false
	}
	if errs := validation.ValidateStruct(req); errs != nil {
		errsJSON, err := validation.ErrorsToJson(errs)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
			return false
		}
		RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
		logger.Errorf(r.Context(), "❌  Validation failed: %s", errsJSON)
		return false
	}
	return true
}

// mediaType strips parameters such as "; codecs=opus".
func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}
