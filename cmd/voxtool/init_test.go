package main

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Faultbox/voxelcast/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "voxelcast.yaml")

	got, err := writeDefaultConfig(path)
	if err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	if got != path {
		t.Errorf("expected %s, got %s", path, got)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Grid.Size != config.Default().Grid.Size {
		t.Errorf("expected default grid size, got %d", cfg.Grid.Size)
	}
}

func TestWriteDefaultConfigToUserDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config directory is only redirectable via XDG_CONFIG_HOME on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := writeDefaultConfig("")
	if err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	if want := filepath.Join(config.ConfigDir(), "config.yaml"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if _, err := config.LoadFile(got); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
}
