package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// gradient is a 4x2 grey image: row 0 is black..white, row 1 is all white.
func gradient() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetGray(x, 0, color.Gray{Y: uint8(x * 85)})
		img.SetGray(x, 1, color.Gray{Y: 255})
	}
	return img
}

func writeFile(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return path
}

func TestFromImage(t *testing.T) {
	img, err := FromImage(gradient())
	require.NoError(t, err)

	assert.Equal(t, 4, img.Width())
	assert.Equal(t, 2, img.Height())
	assert.InDelta(t, 0.0, img.At(0, 0), 1e-9)
	assert.InDelta(t, 1.0/3, img.At(1, 0), 1e-9)
	assert.InDelta(t, 1.0, img.At(3, 0), 1e-9)
	assert.InDelta(t, 1.0, img.At(2, 1), 1e-9)
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := gradient().SubImage(image.Rect(1, 0, 3, 2))
	img, err := FromImage(src)
	require.NoError(t, err)

	assert.Equal(t, 2, img.Width())
	assert.InDelta(t, 1.0/3, img.At(0, 0), 1e-9)
}

func TestFromImageColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	img, err := FromImage(src)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, img.At(0, 0), 1e-9)
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewGray(image.Rect(0, 0, 0, 3)))
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(f *os.File) error
	}{
		{"frame.png", func(f *os.File) error { return png.Encode(f, gradient()) }},
		{"frame.bmp", func(f *os.File) error { return bmp.Encode(f, gradient()) }},
		{"frame.tiff", func(f *os.File) error { return tiff.Encode(f, gradient(), nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name, tt.encode)

			img, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 4, img.Width())
			assert.Equal(t, 2, img.Height())
			assert.InDelta(t, 2.0/3, img.At(2, 0), 1e-9)
			assert.InDelta(t, 1.0, img.At(0, 1), 1e-9)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "garbage.png", func(f *os.File) error {
		_, err := f.WriteString("not an image")
		return err
	})
	_, err = Load(path)
	assert.ErrorIs(t, err, image.ErrFormat)
}
