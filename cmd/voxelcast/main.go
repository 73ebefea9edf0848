// Package main is the entry point for the voxelcast reconstruction binary.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/voxelcast/internal/config"
	"github.com/Faultbox/voxelcast/internal/imageio"
	"github.com/Faultbox/voxelcast/internal/logger"
	"github.com/Faultbox/voxelcast/internal/reconstruct"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.InitWithFileConfig(cfg.Logging.Level, cfg.Logging.FileConfig(), true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== voxelcast ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.Input.Image == "" {
		logger.Error("no input image; set input.image or pass -image")
		os.Exit(1)
	}

	img, err := imageio.Load(cfg.Input.Image)
	if err != nil {
		logger.Error("failed to load image", zap.String("path", cfg.Input.Image), zap.Error(err))
		os.Exit(1)
	}

	res, err := reconstruct.Run(cfg, img)
	if err != nil {
		logger.Error("reconstruction failed", zap.Error(err))
		os.Exit(1)
	}

	out, err := yaml.Marshal(struct {
		RunID   string `yaml:"run_id"`
		Image   string `yaml:"image"`
		Elapsed string `yaml:"elapsed"`
		Stats   any    `yaml:"stats"`
	}{res.RunID, cfg.Input.Image, res.Elapsed.String(), res.Stats})
	if err != nil {
		logger.Error("failed to encode stats", zap.Error(err))
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Error("failed to write stats", zap.Error(err))
		os.Exit(1)
	}
}
