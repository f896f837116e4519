package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// SavedProjectTTL bounds how long a saved snapshot stays cached. Saving again
// evicts the entry earlier.
const SavedProjectTTL = 10 * time.Minute

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

func (r *httpRenderer) RenderProject(ctx context.Context, getter port.ProjectGetter, id uuid.UUID) ([]byte, string, error) {
	out, err := getter.GetProject(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return encode(out)
}

// RenderSavedProject fetches the saved project either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted ETag.
func (r *httpRenderer) RenderSavedProject(ctx context.Context, getter port.SavedProjectGetter, id uuid.UUID) ([]byte, string, error) {
	raw, err := r.cache.GetSavedProject(ctx, id)
	etag, errEtag := r.cache.GetEtagSavedProject(ctx, id)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetSavedProject(ctx, id)
	if err != nil {
		return nil, "", err
	}

	raw, etag, err = encode(out)
	if err != nil {
		return nil, "", err
	}
	r.cache.SetSavedProject(ctx, id, raw, SavedProjectTTL)
	r.cache.SetEtagSavedProject(ctx, id, etag, SavedProjectTTL)

	return raw, etag, nil
}

func encode(v any) ([]byte, string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}
	return raw, fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw)), nil
}
