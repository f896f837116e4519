package studio

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// uploader moves upload payloads into the assets bucket. With repo set it
// also knows which files a saved snapshot still needs.
type uploader struct {
	strg port.Storage
	opt  port.FileOptimiser
	repo port.ProjectRepository
	cfg  Config
}

// store saves the payload and, when thumbnail is set and the optimiser can
// read the type, a WebP thumbnail next to it. A failed thumbnail is logged and
// skipped; a failed payload write aborts.
func (u uploader) store(ctx context.Context, projectID uuid.UUID, folder string, in port.UploadInput, thumbnail bool) (model.FileDescriptor, error) {
	key := objectKey(projectID, folder, in.Name)
	body, size := in.Reader, in.Size

	var data []byte
	wantThumb := thumbnail && u.opt != nil && u.opt.Supports(in.MimeType)
	if wantThumb {
		b, err := io.ReadAll(in.Reader)
		if err != nil {
			return model.FileDescriptor{}, fmt.Errorf("read upload: %w", err)
		}
		data = b
		body, size = bytes.NewReader(b), int64(len(b))
	}

	if err := u.strg.SaveFile(ctx, u.cfg.AssetsBucket, key, body, size, in.MimeType); err != nil {
		return model.FileDescriptor{}, fmt.Errorf("failed to save %q: %w", key, err)
	}
	logger.Infof(ctx, "✅  stored %q as %q", in.Name, key)

	fd := model.FileDescriptor{
		Name:      in.Name,
		SizeBytes: max(size, 0),
		MimeType:  in.MimeType,
		Payload:   key,
	}
	if wantThumb {
		fd.Thumbnail = u.storeThumbnail(ctx, projectID, in.MimeType, data)
	}
	return fd, nil
}

func (u uploader) storeThumbnail(ctx context.Context, projectID uuid.UUID, mimeType string, data []byte) string {
	thumb, err := u.opt.Thumbnail(mimeType, bytes.NewReader(data), u.cfg.ThumbnailWidth)
	if err != nil {
		logger.Warnf(ctx, "⚠️  could not build thumbnail: %v", err)
		return ""
	}
	key := fmt.Sprintf("%s/%s/%s.webp", projectID, folderThumbnails, uuid.NewString())
	if err := u.strg.SaveFile(ctx, u.cfg.AssetsBucket, key, bytes.NewReader(thumb), int64(len(thumb)), "image/webp"); err != nil {
		logger.Warnf(ctx, "⚠️  could not save thumbnail %q: %v", key, err)
		return ""
	}
	return key
}

// remove deletes stored objects. Failures are only logged.
func (u uploader) remove(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := u.strg.RemoveFile(ctx, u.cfg.AssetsBucket, key); err != nil {
			logger.Warnf(ctx, "⚠️  failed to remove %q: %v", key, err)
		}
	}
}

// savedKeys lists the files the saved snapshot of the project refers to. ok is
// false when the repository could not tell, in which case nothing may go.
func (u uploader) savedKeys(ctx context.Context, projectID uuid.UUID) (keys map[string]struct{}, ok bool) {
	if u.repo == nil {
		return nil, true
	}
	saved, err := u.repo.GetByID(ctx, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, true
	}
	if err != nil {
		logger.Warnf(ctx, "⚠️  keeping files of project #%s, saved snapshot unreadable: %v", projectID, err)
		return nil, false
	}
	return saved.Snapshot.ObjectKeys(), true
}

// release deletes files just dropped from the live project unless the saved
// snapshot still refers to them.
func (u uploader) release(ctx context.Context, projectID uuid.UUID, keys ...string) {
	saved, ok := u.savedKeys(ctx, projectID)
	if !ok {
		return
	}
	var drop []string
	for _, k := range keys {
		if _, kept := saved[k]; !kept {
			drop = append(drop, k)
		}
	}
	u.remove(ctx, drop...)
}

// sweep deletes every key of from that none of keep refers to.
func (u uploader) sweep(ctx context.Context, from map[string]struct{}, keep ...map[string]struct{}) {
next:
	for k := range from {
		for _, m := range keep {
			if _, kept := m[k]; kept {
				continue next
			}
		}
		u.remove(ctx, k)
	}
}
