package api

import (
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

func AddSceneHandler(svc port.SceneEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		scene, err := svc.AddScene(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, "could not add scene", err)
			return
		}

		RespondJSON(w, http.StatusCreated, scene)
		logger.Infof(r.Context(), "✅  Added scene %q", scene.ID)
	}
}

func RemoveSceneHandler(svc port.SceneEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		sid, ok := sceneID(w, r)
		if !ok {
			return
		}

		if err := svc.RemoveScene(r.Context(), id, sid); err != nil {
			writeUseCaseError(w, "could not remove scene", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Removed scene %q", sid)
	}
}

type MoveSceneRequest struct {
	From *int `json:"from" validate:"required"`
	To   *int `json:"to" validate:"required"`
}

func MoveSceneHandler(svc port.SceneEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		var req MoveSceneRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		scenes, err := svc.MoveScene(r.Context(), id, *req.From, *req.To)
		if err != nil {
			writeUseCaseError(w, "could not move scene", err)
			return
		}

		RespondJSON(w, http.StatusOK, scenes)
		logger.Infof(r.Context(), "✅  Moved scene %d to %d", *req.From, *req.To)
	}
}

type UpdateSceneRequest struct {
	Title           *string           `json:"title" validate:"omitempty,max=200"`
	DurationSeconds *float64          `json:"duration_seconds"`
	Transition      *model.Transition `json:"transition" validate:"omitempty,transition"`
	VoiceoverID     *string           `json:"voiceover_id"`
}

func UpdateSceneHandler(svc port.SceneEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		sid, ok := sceneID(w, r)
		if !ok {
			return
		}
		var req UpdateSceneRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		scene, err := svc.UpdateScene(r.Context(), id, sid, model.ScenePatch{
			Title:           req.Title,
			DurationSeconds: req.DurationSeconds,
			Transition:      req.Transition,
			VoiceoverID:     req.VoiceoverID,
		})
		if err != nil {
			writeUseCaseError(w, "could not update scene", err)
			return
		}

		RespondJSON(w, http.StatusOK, scene)
		logger.Infof(r.Context(), "✅  Updated scene %q", sid)
	}
}

type AttachAssetRequest struct {
	AssetID string `json:"asset_id" validate:"required"`
}

func AttachAssetHandler(svc port.SceneEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		sid, ok := sceneID(w, r)
		if !ok {
			return
		}
		var req AttachAssetRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		ref, err := svc.AttachAsset(r.Context(), id, sid, req.AssetID)
		if err != nil {
			writeUseCaseError(w, "could not attach asset", err)
			return
		}

		RespondJSON(w, http.StatusCreated, ref)
		logger.Infof(r.Context(), "✅  Attached asset %q to scene %q", ref.ID, sid)
	}
}

func DetachAssetHandler(svc port.SceneEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		sid, ok := sceneID(w, r)
		if !ok {
			return
		}
		index, ok := indexParam(w, r)
		if !ok {
			return
		}

		ref, err := svc.DetachAsset(r.Context(), id, sid, index)
		if err != nil {
			writeUseCaseError(w, "could not detach asset", err)
			return
		}

		RespondJSON(w, http.StatusOK, ref)
		logger.Infof(r.Context(), "✅  Detached asset %q from scene %q", ref.ID, sid)
	}
}
