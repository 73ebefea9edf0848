// Package voxel back-projects 2D intensity images into cubic voxel grids by
// casting one ray per pixel and accumulating attenuated intensity along it.
package voxel

import (
	"fmt"
	gomath "math"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/voxelcast/pkg/math"
)

// Accumulate casts one ray per positive pixel of img from the camera
// position into the grid described by p and returns the accumulated grid.
// All input checks happen before the grid is allocated.
func Accumulate(img *Image, p Params) (*Grid, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	pl := p.plan()
	total := img.width * img.height
	workers := min(p.WorkerCount(), total)
	if p.Strategy == StrategyPrivate {
		workers = min(workers, privateWorkerLimit(p.GridSize))
	}

	out := newSink(p.Strategy, p.GridSize, workers)

	var cursor atomic.Int64
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy (go 1.21 loop semantics)
		add := func(idx int, v float64) { out.add(w, idx, v) }
		g.Go(func() error {
			for {
				i := int(cursor.Inc() - 1)
				if i >= total {
					return nil
				}
				pl.castPixel(img, i%img.width, i/img.width, add)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out.finish(), nil
}

// castPixel deposits the contribution of one pixel through add.
func (pl plan) castPixel(img *Image, px, py int, add func(idx int, v float64)) {
	v := img.At(px, py)
	if v <= 0 {
		return
	}

	halfW := float64(img.width) / 2
	halfH := float64(img.height) / 2
	dir := math.Vec3{
		X: (float64(px) - halfW) / halfW,
		Y: (float64(py) - halfH) / halfH,
		Z: 1,
	}
	if pl.rotation != nil {
		dir = pl.rotation.MulVec3(dir)
	}

	n := pl.bounds.n
	pl.bounds.walk(pl.origin, dir, func(s RayStep) {
		idx := (s.IX*n+s.IY)*n + s.IZ
		add(idx, v*gomath.Exp(-pl.attenuation*s.Distance))
	})
}

// AccumulateBuffer checks that shape is two-dimensional, wraps data as an
// image and accumulates it. A shape of any other rank fails with
// ErrInvalidArgument before anything is allocated.
func AccumulateBuffer(shape []int, data []float64, p Params) (*Grid, error) {
	img, err := NewImage(shape, data)
	if err != nil {
		return nil, err
	}
	return Accumulate(img, p)
}

// AccumulateVoxelGrid accumulates with positional arguments, the default
// worker count and the private-grid strategy. Orientation is accepted but
// not applied.
func AccumulateVoxelGrid(
	img *Image,
	cameraPosition, cameraOrientation []float64,
	gridSize int,
	voxelSize float64,
	gridCenter []float64,
	attenuation float64,
) (*Grid, error) {
	p := DefaultParams()
	p.CameraPosition = cameraPosition
	p.CameraOrientation = cameraOrientation
	p.GridSize = gridSize
	p.VoxelSize = voxelSize
	p.GridCenter = gridCenter
	p.Attenuation = attenuation
	return Accumulate(img, p)
}
