// Package imageio decodes image files into intensity images for accumulation.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder

	"github.com/Faultbox/voxelcast/pkg/voxel"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Load decodes the image at path and converts it to grey intensities in [0, 1].
func Load(path string) (*voxel.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}

	img, err := FromImage(src)
	if err != nil {
		return nil, fmt.Errorf("converting %s image %s: %w", format, path, err)
	}
	return img, nil
}

// FromImage converts any decoded image to grey intensities in [0, 1].
// Row y of the result is row y of src counted from its bounds minimum.
func FromImage(src image.Image) (*voxel.Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	data := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.Gray16Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			data[y*w+x] = float64(g.Y) / 0xffff
		}
	}
	return voxel.NewImage([]int{h, w}, data)
}
