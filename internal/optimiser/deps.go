package optimiser

import (
	"image"
	"io"

	"github.com/chai2010/webp"
)

type WebPEncoder interface {
	Encode(img image.Image, quality int, w io.Writer) error
	Decode(r io.Reader) (image.Image, string, error)
}

type webpEncoder struct{}

func NewWebPEncoder() WebPEncoder {
	return webpEncoder{}
}

func (webpEncoder) Encode(img image.Image, quality int, w io.Writer) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
}

// Decode accepts any format registered with the image package.
func (webpEncoder) Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
