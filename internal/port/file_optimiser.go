package port

import "io"

// FileOptimiser builds the derived files stored next to uploads.
type FileOptimiser interface {
	Supports(mimeType string) bool
	Thumbnail(mimeType string, r io.Reader, width int) ([]byte, error)
}
