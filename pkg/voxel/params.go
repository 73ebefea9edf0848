package voxel

import (
	"fmt"
	gomath "math"
	"runtime"

	"go.uber.org/multierr"

	"github.com/Faultbox/voxelcast/pkg/math"
)

// DefaultAttenuation is the attenuation coefficient used when none is given.
const DefaultAttenuation = 0.01

// Params describes the camera and grid for one accumulation call.
type Params struct {
	CameraPosition []float64 // x, y, z
	// CameraOrientation holds roll, pitch, yaw in radians. It is accepted but
	// only rotates the per-pixel rays when ApplyOrientation is set.
	CameraOrientation []float64
	ApplyOrientation  bool

	GridSize    int
	VoxelSize   float64
	GridCenter  []float64 // x, y, z
	Attenuation float64

	Workers  int // <= 0 uses runtime.NumCPU()
	Strategy Strategy
}

// DefaultParams returns params with the default attenuation, an automatic
// worker count and the private-grid strategy. Camera and grid fields are
// left for the caller.
func DefaultParams() Params {
	return Params{
		Attenuation: DefaultAttenuation,
		Strategy:    StrategyPrivate,
	}
}

// Validate checks every field and reports all problems at once. Each
// reported error wraps ErrInvalidArgument.
func (p Params) Validate() error {
	var err error
	if len(p.CameraPosition) != 3 {
		err = multierr.Append(err, fmt.Errorf("%w: camera position needs 3 components, got %d", ErrInvalidArgument, len(p.CameraPosition)))
	}
	if n := len(p.CameraOrientation); n != 0 && n != 3 {
		err = multierr.Append(err, fmt.Errorf("%w: camera orientation needs 0 or 3 components, got %d", ErrInvalidArgument, n))
	}
	if p.ApplyOrientation && len(p.CameraOrientation) != 3 {
		err = multierr.Append(err, fmt.Errorf("%w: applying orientation requires roll, pitch and yaw", ErrInvalidArgument))
	}
	if len(p.GridCenter) != 3 {
		err = multierr.Append(err, fmt.Errorf("%w: grid center needs 3 components, got %d", ErrInvalidArgument, len(p.GridCenter)))
	}
	if p.GridSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidArgument, p.GridSize))
	}
	if !(p.VoxelSize > 0) || gomath.IsInf(p.VoxelSize, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: voxel size must be positive and finite, got %v", ErrInvalidArgument, p.VoxelSize))
	}
	if gomath.IsNaN(p.Attenuation) || gomath.IsInf(p.Attenuation, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: attenuation must be finite, got %v", ErrInvalidArgument, p.Attenuation))
	}
	if !p.Strategy.valid() {
		err = multierr.Append(err, fmt.Errorf("%w: unknown strategy %d", ErrInvalidArgument, int(p.Strategy)))
	}
	for _, v := range [][]float64{p.CameraPosition, p.CameraOrientation, p.GridCenter} {
		if !allFinite(v) {
			err = multierr.Append(err, fmt.Errorf("%w: camera and grid coordinates must be finite", ErrInvalidArgument))
			break
		}
	}
	return err
}

// WorkerCount resolves the number of workers to use.
func (p Params) WorkerCount() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return max(runtime.NumCPU(), 1)
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if gomath.IsNaN(x) || gomath.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// plan is the validated, vector-typed form of Params.
type plan struct {
	origin      math.Vec3
	bounds      gridBounds
	attenuation float64
	rotation    *math.Mat3
}

func (p Params) plan() plan {
	origin, _ := math.Vec3FromSlice(p.CameraPosition)
	center, _ := math.Vec3FromSlice(p.GridCenter)

	pl := plan{
		origin:      origin,
		bounds:      newGridBounds(p.GridSize, p.VoxelSize, center),
		attenuation: p.Attenuation,
	}
	if p.ApplyOrientation {
		o := p.CameraOrientation
		r := math.RotationFromEuler(o[0], o[1], o[2])
		pl.rotation = &r
	}
	return pl
}
