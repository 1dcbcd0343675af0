package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Terrain.DataPath != "elevation.txt" {
		t.Errorf("expected data path elevation.txt, got %s", cfg.Terrain.DataPath)
	}
	if cfg.Terrain.MaxEdgeLength != 0.15 {
		t.Errorf("expected max edge length 0.15, got %f", cfg.Terrain.MaxEdgeLength)
	}
	if !cfg.Terrain.GenerateFallback {
		t.Error("expected generate_fallback to be true by default")
	}

	if cfg.Shading.Mode != ShadingNormals {
		t.Errorf("expected shading mode %q, got %q", ShadingNormals, cfg.Shading.Mode)
	}
	if cfg.Shading.Ambient != 0.2 {
		t.Errorf("expected ambient 0.2, got %f", cfg.Shading.Ambient)
	}

	if cfg.Camera.MoveSpeed != 2.5 {
		t.Errorf("expected move speed 2.5, got %f", cfg.Camera.MoveSpeed)
	}
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terravis.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

terrain:
  data_path: "mountains.txt"
  max_edge_length: 0.2
  generate_fallback: false
  sample_count: 100
  seed: 42

shading:
  mode: "phong"
  ambient: 0.1
  diffuse: 0.9
  specular: 0.5
  shininess: 64
  light_longitude: 90
  light_latitude: 30
  light_color: [1.0, 0.9, 0.8]

camera:
  move_speed: 5.0
  mouse_sensitivity: 0.2
  roll_sensitivity: 0.5
  fov: 60

logging:
  level: "debug"
  log_file: "terravis.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Terrain.DataPath != "mountains.txt" {
		t.Errorf("expected data path mountains.txt, got %s", cfg.Terrain.DataPath)
	}
	if cfg.Terrain.MaxEdgeLength != 0.2 {
		t.Errorf("expected max edge length 0.2, got %f", cfg.Terrain.MaxEdgeLength)
	}
	if cfg.Terrain.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Terrain.Seed)
	}
	if cfg.Shading.Mode != ShadingPhong {
		t.Errorf("expected shading mode phong, got %s", cfg.Shading.Mode)
	}
	if cfg.Shading.LightColor != [3]float32{1.0, 0.9, 0.8} {
		t.Errorf("expected light color [1 0.9 0.8], got %v", cfg.Shading.LightColor)
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terravis.yaml")

	yamlContent := `
terrain:
  data_path: "custom.txt"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if cfg.Terrain.DataPath != "custom.txt" {
		t.Errorf("expected data path custom.txt, got %s", cfg.Terrain.DataPath)
	}
	// Untouched sections keep their defaults.
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Shading.Mode != ShadingNormals {
		t.Errorf("expected default shading mode, got %s", cfg.Shading.Mode)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "terravis.yaml")

	cfg := Default()
	cfg.Terrain.DataPath = "saved.txt"
	cfg.Shading.Mode = ShadingPhong

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}
	if loaded.Terrain.DataPath != "saved.txt" {
		t.Errorf("expected data path saved.txt, got %s", loaded.Terrain.DataPath)
	}
	if loaded.Shading.Mode != ShadingPhong {
		t.Errorf("expected shading mode phong, got %s", loaded.Shading.Mode)
	}
}

func TestLoadMissingFileIsError(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("loadFromFile() of missing file returned nil error")
	}
}
