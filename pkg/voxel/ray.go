package voxel

import (
	"github.com/Faultbox/voxelcast/pkg/math"
)

// RayStep is one sample of a ray inside the grid.
type RayStep struct {
	IX, IY, IZ int
	Distance   float64 // travel distance from the ray origin
}

// gridBounds describes the world-space placement of a cubic grid.
type gridBounds struct {
	n         int
	voxelSize float64
	min       math.Vec3
}

func newGridBounds(n int, voxelSize float64, center math.Vec3) gridBounds {
	half := float64(n) * voxelSize / 2
	return gridBounds{
		n:         n,
		voxelSize: voxelSize,
		min:       center.Sub(math.Vec3{X: half, Y: half, Z: half}),
	}
}

// WalkRay samples a ray at fixed steps of voxelSize/2 out to a travel
// distance of 2*n*voxelSize and calls visit for every sample that falls
// inside the n^3 grid centered at center. Samples are visited in order of
// increasing distance.
//
// This is a fixed-step sampler rather than an exact cell traversal: a ray
// grazing a face, or a large grid relative to the step, may skip a cell or
// sample one cell more than once.
func WalkRay(origin, direction math.Vec3, n int, voxelSize float64, center math.Vec3, visit func(RayStep)) {
	newGridBounds(n, voxelSize, center).walk(origin, direction, visit)
}

func (b gridBounds) walk(origin, direction math.Vec3, visit func(RayStep)) {
	dir := direction.Normalize()
	maxDistance := float64(b.n) * b.voxelSize * 2
	stepSize := b.voxelSize * 0.5

	for t := 0.0; t < maxDistance; t += stepSize {
		p := origin.Add(dir.Scale(t))

		// int() truncates toward zero, so (-1, 0) lands in cell 0.
		ix := int((p.X - b.min.X) / b.voxelSize)
		iy := int((p.Y - b.min.Y) / b.voxelSize)
		iz := int((p.Z - b.min.Z) / b.voxelSize)

		if ix >= 0 && ix < b.n && iy >= 0 && iy < b.n && iz >= 0 && iz < b.n {
			visit(RayStep{IX: ix, IY: iy, IZ: iz, Distance: t})
		}
	}
}

// CastRay returns the in-grid samples of a ray. See WalkRay.
func CastRay(origin, direction math.Vec3, n int, voxelSize float64, center math.Vec3) []RayStep {
	var steps []RayStep
	WalkRay(origin, direction, n, voxelSize, center, func(s RayStep) {
		steps = append(steps, s)
	})
	return steps
}
