package studio

import (
	"context"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

type voiceoverManagerSrv struct {
	ws  port.Workspaces
	upl uploader
}

// NewVoiceoverManager constructs a VoiceoverManager implementation.
func NewVoiceoverManager(ws port.Workspaces, repo port.ProjectRepository, strg port.Storage, cfg Config) port.VoiceoverManager {
	return &voiceoverManagerSrv{ws: ws, upl: uploader{strg: strg, repo: repo, cfg: cfg.withDefaults()}}
}

func (s *voiceoverManagerSrv) UploadVoiceover(ctx context.Context, id uuid.UUID, in port.UploadInput) (model.Voiceover, error) {
	w, err := s.ws.Get(id)
	if err != nil {
		return model.Voiceover{}, err
	}
	if !model.KindAudio.Accepts(in.MimeType) {
		return model.Voiceover{}, ErrMimeTypeMismatch
	}
	fd, err := s.upl.store(ctx, id, folderVoiceover, in, false)
	if err != nil {
		return model.Voiceover{}, err
	}
	return w.Project.AddVoiceover(fd), nil
}

// RemoveVoiceover drops the clip, and its file once no saved snapshot needs
// it. Scenes assigned to it keep the id.
func (s *voiceoverManagerSrv) RemoveVoiceover(ctx context.Context, id uuid.UUID, index int) error {
	w, err := s.ws.Get(id)
	if err != nil {
		return err
	}
	v, err := w.Project.RemoveVoiceover(index)
	if err != nil {
		return err
	}
	s.upl.release(ctx, id, v.Payload)
	return nil
}
