package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

func StartRecordingHandler(svc port.RecordingController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		if err := svc.StartRecording(r.Context(), id); err != nil {
			writeUseCaseError(w, "could not start recording", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type AppendRecordingResponse struct {
	AppendedBytes int64 `json:"appended_bytes"`
}

// AppendRecordingHandler appends the raw request body to the running capture.
func AppendRecordingHandler(svc port.RecordingController, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		body := http.MaxBytesReader(w, r.Body, maxBytes)
		n, err := svc.AppendRecording(r.Context(), id, body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				WriteError(w, http.StatusRequestEntityTooLarge, "chunk too large", nil)
				return
			}
			writeUseCaseError(w, "could not append recording", err)
			return
		}

		RespondJSON(w, http.StatusOK, AppendRecordingResponse{AppendedBytes: n})
	}
}

func StopRecordingHandler(svc port.RecordingController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		v, err := svc.StopRecording(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, "could not stop recording", err)
			return
		}

		RespondJSON(w, http.StatusCreated, v)
		logger.Infof(r.Context(), "✅  Recording saved as voiceover %q", v.Name)
	}
}
