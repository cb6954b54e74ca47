package processor

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeWidth(t *testing.T) {
	p := NewImageProcessor()

	tests := []struct {
		name           string
		originalWidth  int
		originalHeight int
		targetWidth    int
		wantWidth      int
		wantHeight     int
	}{
		{
			name:           "downscale keeps aspect ratio",
			originalWidth:  800,
			originalHeight: 600,
			targetWidth:    400,
			wantWidth:      400,
			wantHeight:     300,
		},
		{
			name:           "upscale keeps aspect ratio",
			originalWidth:  200,
			originalHeight: 100,
			targetWidth:    400,
			wantWidth:      400,
			wantHeight:     200,
		},
		{
			name:           "zero width returns original",
			originalWidth:  320,
			originalHeight: 240,
			targetWidth:    0,
			wantWidth:      320,
			wantHeight:     240,
		},
		{
			name:           "negative width returns original",
			originalWidth:  320,
			originalHeight: 240,
			targetWidth:    -1,
			wantWidth:      320,
			wantHeight:     240,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := image.NewRGBA(image.Rect(0, 0, tt.originalWidth, tt.originalHeight))
			fillImageWithColor(original, color.RGBA{R: 100, G: 150, B: 200, A: 255})

			resized := p.ResizeWidth(original, tt.targetWidth)

			require.NotNil(t, resized)
			assert.Equal(t, tt.wantWidth, resized.Bounds().Dx())
			assert.Equal(t, tt.wantHeight, resized.Bounds().Dy())
		})
	}
}

func TestLoad(t *testing.T) {
	p := NewImageProcessor()
	dir := t.TempDir()

	original := image.NewRGBA(image.Rect(0, 0, 24, 16))
	fillImageWithColor(original, color.RGBA{R: 50, G: 100, B: 150, A: 255})

	tests := []struct {
		name     string
		filename string
		write    func(path string) error
	}{
		{
			name:     "jpeg source",
			filename: "src.jpg",
			write: func(path string) error {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				return jpeg.Encode(f, original, &jpeg.Options{Quality: 90})
			},
		},
		{
			name:     "png source",
			filename: "src.png",
			write: func(path string) error {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				return png.Encode(f, original)
			},
		},
		{
			name:     "gif source uses first frame",
			filename: "src.gif",
			write: func(path string) error {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				return gif.Encode(f, original, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.filename)
			require.NoError(t, tt.write(path))

			img, err := p.Load(path)

			require.NoError(t, err)
			assert.Equal(t, 24, img.Bounds().Dx())
			assert.Equal(t, 16, img.Bounds().Dy())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	p := NewImageProcessor()
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := p.Load(filepath.Join(dir, "nope.jpg"))
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "src.bmp")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

		_, err := p.Load(path)
		assert.ErrorContains(t, err, "unsupported format")
	})

	t.Run("corrupt jpeg", func(t *testing.T) {
		path := filepath.Join(dir, "broken.jpg")
		require.NoError(t, os.WriteFile(path, []byte("not a jpeg"), 0644))

		_, err := p.Load(path)
		assert.Error(t, err)
	})
}

// fillImageWithColor fills the image with a single color
func fillImageWithColor(img *image.RGBA, color color.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, color)
		}
	}
}
