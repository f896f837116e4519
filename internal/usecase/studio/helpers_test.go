package studio

import (
	"strings"
	"testing"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/recorder"
	"github.com/fhuszti/studio-ms-go/internal/workspace"
)

var testCfg = Config{AssetsBucket: "assets", ExportsBucket: "exports", ThumbnailWidth: 64}

func newRegistry() *workspace.Registry {
	return workspace.NewRegistry(func() recorder.Device { return recorder.NewBufferDevice("") })
}

func upload(name, mime, body string) port.UploadInput {
	return port.UploadInput{
		Name:     name,
		MimeType: mime,
		Size:     int64(len(body)),
		Reader:   strings.NewReader(body),
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
