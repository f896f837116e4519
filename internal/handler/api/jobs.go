package api

import (
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
)

func StartAssistHandler(svc port.JobRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		st, err := svc.StartAssist(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, "could not start AI assist", err)
			return
		}

		RespondJSON(w, http.StatusAccepted, st)
		logger.Infof(r.Context(), "✅  AI assist started for project #%s", id)
	}
}

func AssistStatusHandler(svc port.JobRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		st, err := svc.AssistStatus(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, "could not read AI assist status", err)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, st)
	}
}

func StartExportHandler(svc port.JobRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		out, err := svc.StartExport(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, "could not start export", err)
			return
		}

		RespondJSON(w, http.StatusAccepted, out)
		logger.Infof(r.Context(), "✅  Export started for project #%s: %s", id, out.Summary)
	}
}

func ExportStatusHandler(svc port.JobRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := projectID(w, r)
		if !ok {
			return
		}

		out, err := svc.ExportStatus(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, "could not read export status", err)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, out)
	}
}
