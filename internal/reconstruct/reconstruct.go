// Package reconstruct runs one accumulation from a loaded configuration.
package reconstruct

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelcast/internal/config"
	"github.com/Faultbox/voxelcast/internal/logger"
	"github.com/Faultbox/voxelcast/pkg/voxel"
)

// Result is the outcome of a single run.
type Result struct {
	RunID   string
	Grid    *voxel.Grid
	Stats   voxel.GridStats
	Elapsed time.Duration
}

// ParamsFromConfig builds accumulation params from cfg.
func ParamsFromConfig(cfg *config.Config) (voxel.Params, error) {
	if cfg == nil {
		return voxel.Params{}, fmt.Errorf("%w: nil config", voxel.ErrInvalidArgument)
	}
	return cfg.Params()
}

// Run accumulates img into the grid described by cfg.
func Run(cfg *config.Config, img *voxel.Image) (*Result, error) {
	p, err := ParamsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", voxel.ErrInvalidArgument)
	}

	runID := uuid.NewString()
	log := logger.Log.With(zap.String("run_id", runID))

	log.Info("starting accumulation",
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()),
		zap.Int("grid_size", p.GridSize),
		zap.Float64("voxel_size", p.VoxelSize),
		zap.Float64("attenuation", p.Attenuation),
		zap.Stringer("strategy", p.Strategy),
		zap.Int("workers", p.WorkerCount()),
		zap.Bool("apply_orientation", p.ApplyOrientation),
	)

	start := time.Now()
	grid, err := voxel.Accumulate(img, p)
	if err != nil {
		log.Error("accumulation failed", zap.Error(err))
		return nil, fmt.Errorf("accumulating: %w", err)
	}
	elapsed := time.Since(start)

	stats := voxel.Stats(grid)
	log.Info("accumulation complete",
		zap.Duration("elapsed", elapsed),
		zap.Int("non_zero_voxels", stats.NonZeroVoxels),
		zap.Float64("occupancy", stats.Occupancy),
		zap.Float64("max", stats.Max),
		zap.Float64("sum", stats.Sum),
	)
	if stats.NonZeroVoxels == 0 {
		log.Warn("no rays reached the grid")
	}

	return &Result{
		RunID:   runID,
		Grid:    grid,
		Stats:   stats,
		Elapsed: elapsed,
	}, nil
}
