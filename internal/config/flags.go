package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagImage       = flag.String("image", "", "Input image (PNG, JPEG, BMP or TIFF)")
	flagWorkers     = flag.Int("workers", 0, "Worker goroutines (0 = config value)")
	flagStrategy    = flag.String("strategy", "", "Accumulation strategy: private, sharded or atomic")
	flagAttenuation = flag.Float64("attenuation", -1, "Attenuation coefficient (negative = config value)")
	flagGridSize    = flag.Int("grid-size", 0, "Voxels per grid side")
	flagVoxelSize   = flag.Float64("voxel-size", 0, "Voxel edge length")
	flagLogFile     = flag.String("log-file", "", "Log file path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagImage != "" {
		cfg.Input.Image = *flagImage
	}
	if *flagWorkers > 0 {
		cfg.Processing.Workers = *flagWorkers
	}
	if *flagStrategy != "" {
		cfg.Processing.Strategy = *flagStrategy
	}
	if *flagAttenuation >= 0 {
		cfg.Processing.Attenuation = *flagAttenuation
	}
	if *flagGridSize > 0 {
		cfg.Grid.Size = *flagGridSize
	}
	if *flagVoxelSize > 0 {
		cfg.Grid.VoxelSize = *flagVoxelSize
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
