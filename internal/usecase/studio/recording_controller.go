package studio

import (
	"bytes"
	"context"
	"io"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

type recordingControllerSrv struct {
	ws  port.Workspaces
	upl uploader
}

// NewRecordingController constructs a RecordingController implementation.
func NewRecordingController(ws port.Workspaces, strg port.Storage, cfg Config) port.RecordingController {
	return &recordingControllerSrv{ws: ws, upl: uploader{strg: strg, cfg: cfg.withDefaults()}}
}

func (s *recordingControllerSrv) StartRecording(ctx context.Context, id uuid.UUID) error {
	w, err := s.ws.Get(id)
	if err != nil {
		return err
	}
	if err := w.Recorder.Start(ctx); err != nil {
		return err
	}
	logger.Info(ctx, "🎙️  recording started")
	return nil
}

func (s *recordingControllerSrv) AppendRecording(ctx context.Context, id uuid.UUID, r io.Reader) (int64, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return 0, err
	}
	return io.Copy(w.Recorder, r)
}

// StopRecording releases the device and turns the capture into a voiceover.
// If the capture cannot be stored it is lost and no voiceover is added.
func (s *recordingControllerSrv) StopRecording(ctx context.Context, id uuid.UUID) (model.Voiceover, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.Voiceover{}, err
	}
	rec, err := w.Recorder.Stop()
	if err != nil {
		return model.Voiceover{}, err
	}

	fd, err := s.upl.store(ctx, id, folderVoiceover, port.UploadInput{
		Name:     rec.Name,
		MimeType: rec.MimeType,
		Size:     int64(len(rec.Data)),
		Reader:   bytes.NewReader(rec.Data),
	}, false)
	if err != nil {
		return model.Voiceover{}, err
	}
	v := w.Project.AddVoiceover(fd)
	logger.Infof(ctx, "✅  recording %q saved as voiceover %q", rec.Name, v.ID)
	return v, nil
}
