package mock

import (
	"io"
	"strings"
)

// MockFileOptimiser implements file optimisation operations for tests.
type MockFileOptimiser struct {
	ThumbnailOut []byte
	ThumbnailErr error

	ThumbnailCalled bool
	GotWidth        int
}

// Supports accepts every image type.
func (m *MockFileOptimiser) Supports(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

func (m *MockFileOptimiser) Thumbnail(mimeType string, r io.Reader, width int) ([]byte, error) {
	m.ThumbnailCalled = true
	m.GotWidth = width
	if m.ThumbnailErr != nil {
		return nil, m.ThumbnailErr
	}
	return m.ThumbnailOut, nil
}
