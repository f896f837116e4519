package api

import (
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

func UploadAssetHandler(svc port.AssetManager, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		kind, ok := kindParam(w, r)
		if !ok {
			return
		}
		in, cleanup, ok := readUpload(w, r, maxBytes)
		if !ok {
			return
		}
		defer cleanup()

		asset, err := svc.UploadAsset(r.Context(), id, kind, in)
		if err != nil {
			writeUseCaseError(w, "could not upload asset", err)
			return
		}

		RespondJSON(w, http.StatusCreated, asset)
		logger.Infof(r.Context(), "✅  Uploaded %s asset %q (%d bytes)", kind, asset.Name, asset.SizeBytes)
	}
}

func RemoveAssetHandler(svc port.AssetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		kind, ok := kindParam(w, r)
		if !ok {
			return
		}
		index, ok := indexParam(w, r)
		if !ok {
			return
		}

		if err := svc.RemoveAsset(r.Context(), id, kind, index); err != nil {
			writeUseCaseError(w, "could not remove asset", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Removed %s asset #%d", kind, index)
	}
}

func GetAssetURLHandler(svc port.AssetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		kind, ok := kindParam(w, r)
		if !ok {
			return
		}
		index, ok := indexParam(w, r)
		if !ok {
			return
		}

		out, err := svc.GetAssetURL(r.Context(), id, kind, index)
		if err != nil {
			writeUseCaseError(w, "could not generate asset url", err)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, out)
	}
}
