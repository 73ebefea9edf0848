package voxel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_IndexLayout(t *testing.T) {
	g := NewGrid(3)
	require.Len(t, g.Data, 27)
	assert.Equal(t, 0, g.Index(0, 0, 0))
	assert.Equal(t, 1, g.Index(0, 0, 1))
	assert.Equal(t, 3, g.Index(0, 1, 0))
	assert.Equal(t, 9, g.Index(1, 0, 0))
	assert.Equal(t, 26, g.Index(2, 2, 2))
}

func TestGrid_Slices(t *testing.T) {
	g := NewGrid(2)
	for i := range g.Data {
		g.Data[i] = float64(i)
	}
	s := g.Slices()
	assert.Equal(t, 5.0, s[1][0][1])
	assert.Equal(t, g.At(1, 1, 0), s[1][1][0])

	// Slices is a copy.
	s[0][0][0] = 42
	assert.Equal(t, 0.0, g.Data[0])
	assert.Equal(t, 28.0, g.Sum())
}

func TestNewImage(t *testing.T) {
	img, err := NewImage([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width())
	assert.Equal(t, 2, img.Height())
	assert.Equal(t, 6.0, img.At(2, 1))
	assert.Equal(t, 2.0, img.At(1, 0))
}

func TestNewImage_CopiesData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	img, err := NewImage([]int{2, 2}, data)
	require.NoError(t, err)
	data[0] = -1
	assert.Equal(t, 1.0, img.At(0, 0))
}

func TestNewImage_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
		data  []float64
	}{
		{"rank 1", []int{4}, []float64{1, 2, 3, 4}},
		{"rank 3", []int{1, 2, 2}, []float64{1, 2, 3, 4}},
		{"rank 0", nil, nil},
		{"zero width", []int{2, 0}, nil},
		{"negative height", []int{-1, 2}, nil},
		{"short buffer", []int{2, 2}, []float64{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(tt.shape, tt.data)
			assert.Nil(t, img)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestImageFromRows(t *testing.T) {
	img, err := ImageFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width())
	assert.Equal(t, 3, img.Height())
	assert.Equal(t, 5.0, img.At(0, 2))

	_, err = ImageFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ImageFromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestImage_PixelsCopy(t *testing.T) {
	img, err := NewImage([]int{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	pix := img.Pixels()
	assert.Equal(t, []float64{1, 2, 3, 4}, pix)

	pix[0] = 99
	assert.Equal(t, 1.0, img.At(0, 0))
}
