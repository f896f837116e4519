package api

import (
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

func UploadVoiceoverHandler(svc port.VoiceoverManager, maxBytes int64) http.HandlerFunc {
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

		v, err := svc.UploadVoiceover(r.Context(), id, in)
		if err != nil {
			writeUseCaseError(w, "could not upload voiceover", err)
			return
		}

		RespondJSON(w, http.StatusCreated, v)
		logger.Infof(r.Context(), "✅  Uploaded voiceover %q", v.Name)
	}
}

func RemoveVoiceoverHandler(svc port.VoiceoverManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}
		index, ok := indexParam(w, r)
		if !ok {
			return
		}

		if err := svc.RemoveVoiceover(r.Context(), id, index); err != nil {
			writeUseCaseError(w, "could not remove voiceover", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Removed voiceover #%d", index)
	}
}
