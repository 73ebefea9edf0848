// Package config handles reconstruction configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/voxelcast/internal/logger"
	"github.com/Faultbox/voxelcast/pkg/voxel"
)

// Config holds all reconstruction settings.
type Config struct {
	Camera     CameraConfig     `yaml:"camera"`
	Grid       GridConfig       `yaml:"grid"`
	Processing ProcessingConfig `yaml:"processing"`
	Input      InputConfig      `yaml:"input"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CameraConfig holds the camera pose.
type CameraConfig struct {
	Position []float64 `yaml:"position"` // x, y, z
	// Orientation is roll, pitch, yaw in radians. Only applied to rays when
	// ApplyOrientation is set.
	Orientation      []float64 `yaml:"orientation"`
	ApplyOrientation bool      `yaml:"apply_orientation"`
}

// GridConfig holds the voxel grid placement.
type GridConfig struct {
	Size      int       `yaml:"size"`
	VoxelSize float64   `yaml:"voxel_size"`
	Center    []float64 `yaml:"center"`
}

// ProcessingConfig holds accumulation settings.
type ProcessingConfig struct {
	Attenuation float64 `yaml:"attenuation"`
	Workers     int     `yaml:"workers"`  // 0 = one per CPU
	Strategy    string  `yaml:"strategy"` // private, sharded or atomic
}

// InputConfig holds input file paths.
type InputConfig struct {
	Image string `yaml:"image"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"` // JSON lines in log_file
}

// FileConfig returns the rotating log file settings. An empty LogFile
// disables file output.
func (l LoggingConfig) FileConfig() logger.FileConfig {
	if l.LogFile == "" {
		return logger.FileConfig{}
	}
	fc := logger.DefaultFileConfig(l.LogFile)
	fc.JSON = l.JSON
	return fc
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Position:    []float64{0, 0, -50},
			Orientation: []float64{0, 0, 0},
		},
		Grid: GridConfig{
			Size:      32,
			VoxelSize: 1.0,
			Center:    []float64{0, 0, 0},
		},
		Processing: ProcessingConfig{
			Attenuation: voxel.DefaultAttenuation,
			Workers:     0,
			Strategy:    voxel.StrategyPrivate.String(),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params converts the camera, grid and processing sections into
// accumulation parameters.
func (c *Config) Params() (voxel.Params, error) {
	strategy, err := voxel.ParseStrategy(c.Processing.Strategy)
	if err != nil {
		return voxel.Params{}, err
	}
	return voxel.Params{
		CameraPosition:    c.Camera.Position,
		CameraOrientation: c.Camera.Orientation,
		ApplyOrientation:  c.Camera.ApplyOrientation,
		GridSize:          c.Grid.Size,
		VoxelSize:         c.Grid.VoxelSize,
		GridCenter:        c.Grid.Center,
		Attenuation:       c.Processing.Attenuation,
		Workers:           c.Processing.Workers,
		Strategy:          strategy,
	}, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	p, perr := c.Params()
	if perr != nil {
		err = multierr.Append(err, perr)
	} else {
		err = multierr.Append(err, p.Validate())
	}
	if c.Processing.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("processing.workers must not be negative, got %d", c.Processing.Workers))
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown logging.level %q", c.Logging.Level))
	}
	return err
}
