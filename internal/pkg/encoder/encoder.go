package encoder

import (
	"image"
	"image/jpeg"
	"io"

	"github.com/gen2brain/avif"
	"github.com/gen2brain/webp"
)

// Encoder writes an image to a single output format. Quality is fixed
// at construction; one encoder instance serves the whole run.
type Encoder interface {
	// Format returns the output format name, e.g. "webp".
	Format() string

	// Ext returns the file extension without the dot.
	Ext() string

	Encode(w io.Writer, img image.Image) error
}

type webpEncoder struct {
	quality int
}

func NewWebP(quality int) Encoder {
	return &webpEncoder{quality: quality}
}

func (e *webpEncoder) Format() string { return "webp" }
func (e *webpEncoder) Ext() string    { return "webp" }

func (e *webpEncoder) Encode(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, webp.Options{Quality: e.quality, Method: 6})
}

type avifEncoder struct {
	quality int
}

func NewAVIF(quality int) Encoder {
	return &avifEncoder{quality: quality}
}

func (e *avifEncoder) Format() string { return "avif" }
func (e *avifEncoder) Ext() string    { return "avif" }

func (e *avifEncoder) Encode(w io.Writer, img image.Image) error {
	return avif.Encode(w, img, avif.Options{Quality: e.quality, Speed: 6})
}

type jpegEncoder struct {
	quality int
}

// NewJPEG returns the baseline-compatible fallback encoder.
func NewJPEG(quality int) Encoder {
	return &jpegEncoder{quality: quality}
}

func (e *jpegEncoder) Format() string { return "jpeg" }
func (e *jpegEncoder) Ext() string    { return "jpg" }

func (e *jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: e.quality})
}
