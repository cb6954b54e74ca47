package processor

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

type ImageProcessor interface {
	Load(path string) (image.Image, error)
	ResizeWidth(img image.Image, width int) image.Image
}

type imageProcessor struct{}

func NewImageProcessor() ImageProcessor {
	return &imageProcessor{}
}

// Load decodes a source image, picking the decoder by file extension.
func (p *imageProcessor) Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(file)
	case ".png":
		return png.Decode(file)
	case ".gif":
		return p.firstGifFrame(file)
	default:
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}
}

func (p *imageProcessor) firstGifFrame(file *os.File) (image.Image, error) {
	gifImg, err := gif.DecodeAll(file)
	if err != nil {
		return nil, err
	}

	if len(gifImg.Image) > 0 {
		return gifImg.Image[0], nil
	}

	return nil, fmt.Errorf("no frames in GIF")
}

// ResizeWidth scales the image to the target width, deriving height so
// the aspect ratio is preserved. A width of zero or less returns the
// image unchanged (single-image variants keep original resolution).
func (p *imageProcessor) ResizeWidth(img image.Image, width int) image.Image {
	if width <= 0 {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}
