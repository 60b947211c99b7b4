package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CG_WIDTH", "320")
	t.Setenv("CG_BACKEND", "software")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 600 || cfg.Backend != "software" {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.Output != "demo.png" || cfg.VertexLimit != 256 {
		t.Errorf("defaults = %+v", cfg)
	}

	t.Setenv("CG_HEIGHT", "tall")
	if _, err := loadConfig(); err == nil {
		t.Error("invalid CG_HEIGHT accepted")
	}
}

func TestRunSoftware(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.png")
	cfg := Config{Width: 800, Height: 600, Output: out, Backend: "software", VertexLimit: 256}
	if err := run(cfg); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PNG written")
	}
}

func TestRunUnknownBackend(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, Output: filepath.Join(t.TempDir(), "x.png"), Backend: "nope", VertexLimit: 256}
	if err := run(cfg); err == nil {
		t.Error("unknown backend accepted")
	}
}

func TestCheckerboard(t *testing.T) {
	img := checkerboard(2, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v", b)
	}
	_, _, _, a0 := img.At(0, 0).RGBA()
	_, _, _, a1 := img.At(3, 0).RGBA()
	if a0 == a1 {
		t.Error("adjacent cells share a color")
	}
}
