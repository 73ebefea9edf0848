package voxel

import "fmt"

// Image is a read-only 2D intensity image stored row-major.
type Image struct {
	width, height int
	pix           []float64
}

// NewImage builds an image from a shape and a flat row-major buffer.
// The shape must have exactly two dimensions (height, width).
func NewImage(shape []int, data []float64) (*Image, error) {
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: image must be 2-dimensional, got %d dimensions", ErrInvalidArgument, len(shape))
	}
	h, w := shape[0], shape[1]
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: invalid image dimensions %dx%d", ErrInvalidArgument, w, h)
	}
	if len(data) != h*w {
		return nil, fmt.Errorf("%w: image buffer has %d values, shape %dx%d needs %d", ErrInvalidArgument, len(data), h, w, h*w)
	}

	pix := make([]float64, len(data))
	copy(pix, data)
	return &Image{width: w, height: h, pix: pix}, nil
}

// ImageFromRows builds an image from nested rows, which must all have the
// same non-zero length.
func ImageFromRows(rows [][]float64) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidArgument)
	}
	w := len(rows[0])
	pix := make([]float64, 0, len(rows)*w)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidArgument, y, len(row), w)
		}
		pix = append(pix, row...)
	}
	return &Image{width: w, height: len(rows), pix: pix}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// At returns the intensity at column x, row y.
func (im *Image) At(x, y int) float64 {
	return im.pix[y*im.width+x]
}

// Pixels returns a copy of the row-major intensities.
func (im *Image) Pixels() []float64 {
	out := make([]float64, len(im.pix))
	copy(out, im.pix)
	return out
}
