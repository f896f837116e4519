package optimiser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const thumbnailQuality = 80

var ErrUnsupportedMimeType = errors.New("optimiser: unsupported mime type")

type Optimiser struct {
	webpEnc WebPEncoder
}

// compile-time check: *Optimiser must satisfy port.FileOptimiser
var _ port.FileOptimiser = (*Optimiser)(nil)

func NewOptimiser(webpEnc WebPEncoder) *Optimiser {
	logger.Info(context.Background(), "initialising optimiser...")
	return &Optimiser{webpEnc: webpEnc}
}

// Supports reports whether Thumbnail can decode this MIME type.
func (o *Optimiser) Supports(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}

// Thumbnail decodes an image and returns a lossy WebP at most width pixels
// wide. Smaller images keep their size.
func (o *Optimiser) Thumbnail(mimeType string, r io.Reader, width int) ([]byte, error) {
	if !o.Supports(mimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMimeType, mimeType)
	}
	if width <= 0 {
		return nil, fmt.Errorf("optimiser: invalid thumbnail width %d", width)
	}

	img, _, err := o.webpEnc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("optimiser: failed to decode image: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := o.webpEnc.Encode(scaleToWidth(img, width), thumbnailQuality, buf); err != nil {
		return nil, fmt.Errorf("optimiser: failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	if b.Dx() <= width {
		return src
	}
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
