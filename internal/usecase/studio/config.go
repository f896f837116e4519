package studio

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

const (
	DefaultThumbnailWidth    = 320
	DefaultDownloadURLExpiry = 15 * time.Minute
	DefaultAssistTick        = 120 * time.Millisecond
	DefaultExportTick        = 100 * time.Millisecond
)

// Object key folders, below the project id.
const (
	folderVoiceover  = "voiceover"
	folderLogo       = "logo"
	folderThumbnails = "thumbnails"
)

// Config carries the settings the studio use cases share.
type Config struct {
	AssetsBucket      string
	ExportsBucket     string
	ThumbnailWidth    int
	DownloadURLExpiry time.Duration
	AssistTick        time.Duration
	ExportTick        time.Duration
}

func (c Config) withDefaults() Config {
	if c.ThumbnailWidth <= 0 {
		c.ThumbnailWidth = DefaultThumbnailWidth
	}
	if c.DownloadURLExpiry <= 0 {
		c.DownloadURLExpiry = DefaultDownloadURLExpiry
	}
	if c.AssistTick <= 0 {
		c.AssistTick = DefaultAssistTick
	}
	if c.ExportTick <= 0 {
		c.ExportTick = DefaultExportTick
	}
	return c
}

// objectKey builds "<projectID>/<folder>/<uuid><ext>", keeping the extension
// of the uploaded file name.
func objectKey(projectID uuid.UUID, folder, name string) string {
	return fmt.Sprintf("%s/%s/%s%s", projectID, folder, uuid.NewString(), strings.ToLower(path.Ext(name)))
}
