// voxtool is a CLI utility for inspecting rays, rotations and accumulations.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/voxelcast/internal/config"
	"github.com/Faultbox/voxelcast/internal/imageio"
	"github.com/Faultbox/voxelcast/internal/logger"
	"github.com/Faultbox/voxelcast/internal/reconstruct"
	"github.com/Faultbox/voxelcast/pkg/math"
	"github.com/Faultbox/voxelcast/pkg/voxel"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "rotation", "rot":
		cmdRotation(args)
	case "ray":
		cmdRay(args)
	case "accumulate", "acc":
		cmdAccumulate(args)
	case "info":
		cmdInfo(args)
	case "init":
		cmdInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`voxtool - voxel back-projection utility

Usage:
  voxtool <command> [options]

Commands:
  rotation -roll R -pitch P -yaw Y     Print the ZYX rotation matrix
  ray [options]                        List the cells a ray samples
  accumulate [options] <image>         Accumulate an image and print grid stats
  info <image>                         Show image size and intensity range
  init [-o path]                       Write a default config file

Examples:
  voxtool rotation -yaw 1.5708
  voxtool ray -origin 0,0,-6 -dir 0,0,1 -n 8
  voxtool accumulate -pos 0,0,-20 -n 32 -strategy atomic frame.png
  voxtool info frame.tiff
  voxtool init -o voxelcast.yaml`)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdRotation(args []string) {
	fs := flag.NewFlagSet("rotation", flag.ExitOnError)
	roll := fs.Float64("roll", 0, "Roll about X (radians)")
	pitch := fs.Float64("pitch", 0, "Pitch about Y (radians)")
	yaw := fs.Float64("yaw", 0, "Yaw about Z (radians)")
	fs.Parse(args)

	r := math.RotationFromEuler(*roll, *pitch, *yaw)
	for _, row := range r.Rows() {
		fmt.Printf("% .6f % .6f % .6f\n", row[0], row[1], row[2])
	}
	fmt.Printf("det: %.6f\n", r.Determinant())
}

func cmdRay(args []string) {
	fs := flag.NewFlagSet("ray", flag.ExitOnError)
	origin := vecFlag(fs, "origin", "0,0,-6", "Ray origin x,y,z")
	dir := vecFlag(fs, "dir", "0,0,1", "Ray direction x,y,z (normalized before stepping)")
	center := vecFlag(fs, "center", "0,0,0", "Grid center x,y,z")
	n := fs.Int("n", 8, "Voxels per grid side")
	voxelSize := fs.Float64("voxel", 1, "Voxel edge length")
	fs.Parse(args)

	if *n <= 0 || !(*voxelSize > 0) {
		fail(fmt.Errorf("%w: -n and -voxel must be positive", voxel.ErrInvalidArgument))
	}

	steps := voxel.CastRay(origin.v, dir.v, *n, *voxelSize, center.v)
	fmt.Printf("Samples: %d\n", len(steps))
	for _, s := range steps {
		fmt.Printf("  t=%-8.3f (%d, %d, %d)\n", s.Distance, s.IX, s.IY, s.IZ)
	}
}

func cmdAccumulate(args []string) {
	cfg := config.Default()

	fs := flag.NewFlagSet("accumulate", flag.ExitOnError)
	configPath := fs.String("config", "", "Load settings from a config file first")
	pos := vecFlag(fs, "pos", "", "Camera position x,y,z")
	orient := vecFlag(fs, "orient", "", "Camera roll,pitch,yaw (radians)")
	apply := fs.Bool("apply-orientation", false, "Rotate rays by the camera orientation")
	center := vecFlag(fs, "center", "", "Grid center x,y,z")
	n := fs.Int("n", 0, "Voxels per grid side")
	voxelSize := fs.Float64("voxel", 0, "Voxel edge length")
	att := fs.Float64("att", -1, "Attenuation coefficient")
	workers := fs.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
	strategy := fs.String("strategy", "", "private, sharded or atomic")
	verbose := fs.Bool("v", false, "Log progress to stderr")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: voxtool accumulate [options] <image>")
		os.Exit(1)
	}

	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fail(err)
		}
		cfg = loaded
	}
	if pos.set {
		cfg.Camera.Position = pos.v.Slice()
	}
	if orient.set {
		cfg.Camera.Orientation = orient.v.Slice()
	}
	if *apply {
		cfg.Camera.ApplyOrientation = true
	}
	if center.set {
		cfg.Grid.Center = center.v.Slice()
	}
	if *n > 0 {
		cfg.Grid.Size = *n
	}
	if *voxelSize > 0 {
		cfg.Grid.VoxelSize = *voxelSize
	}
	if *att >= 0 {
		cfg.Processing.Attenuation = *att
	}
	if *workers > 0 {
		cfg.Processing.Workers = *workers
	}
	if *strategy != "" {
		cfg.Processing.Strategy = *strategy
	}
	cfg.Input.Image = fs.Arg(0)

	if *verbose {
		if err := logger.InitWithFileConfig("debug", cfg.Logging.FileConfig(), true); err != nil {
			fail(err)
		}
		defer logger.Sync()
	}

	img, err := imageio.Load(cfg.Input.Image)
	if err != nil {
		fail(err)
	}

	res, err := reconstruct.Run(cfg, img)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Run:     %s\n", res.RunID)
	fmt.Printf("Image:   %s (%dx%d)\n", cfg.Input.Image, img.Width(), img.Height())
	fmt.Printf("Elapsed: %s\n", res.Elapsed)
	fmt.Println()

	out, err := yaml.Marshal(res.Stats)
	if err != nil {
		fail(err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fail(err)
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: voxtool info <image>")
		os.Exit(1)
	}

	img, err := imageio.Load(args[0])
	if err != nil {
		fail(err)
	}

	pix := img.Pixels()
	lit := 0
	for _, v := range pix {
		if v > 0 {
			lit++
		}
	}

	fmt.Printf("Image:  %s\n", args[0])
	fmt.Printf("Size:   %dx%d\n", img.Width(), img.Height())
	fmt.Printf("Lit:    %d of %d pixels cast rays\n", lit, len(pix))
	fmt.Printf("Range:  %.4f .. %.4f\n", floats.Min(pix), floats.Max(pix))
	fmt.Printf("Mean:   %.4f\n", floats.Sum(pix)/float64(len(pix)))
}

func cmdInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default: user config directory)")
	fs.Parse(args)

	path, err := writeDefaultConfig(*out)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", path)
}

// writeDefaultConfig saves the default config to path, or to the user
// config directory when path is empty, and returns where it was written.
func writeDefaultConfig(path string) (string, error) {
	cfg := config.Default()
	if path == "" {
		if err := cfg.Save(); err != nil {
			return "", err
		}
		return filepath.Join(config.ConfigDir(), "config.yaml"), nil
	}
	if err := cfg.SaveTo(path); err != nil {
		return "", err
	}
	return path, nil
}
