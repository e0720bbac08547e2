package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded default = %+v, hardcoded = %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := []byte(`
physics:
  gravity: 0.1
  boost_velocity: -0.8
world:
  rows: 30
  cols: 100
  tick_rate: 30
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Physics.Gravity != 0.1 {
		t.Errorf("Gravity = %v, expected 0.1", cfg.Physics.Gravity)
	}
	if cfg.World.Rows != 30 || cfg.World.Cols != 100 {
		t.Errorf("World = %+v, expected 30x100", cfg.World)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load should fail for a missing explicit config path")
	}
}

func TestDefaultWorldConstants(t *testing.T) {
	cfg := Default()

	// The original 80x24 console tuning.
	if cfg.World.Rows != 24 || cfg.World.Cols != 80 {
		t.Errorf("default world = %dx%d, expected 80x24", cfg.World.Cols, cfg.World.Rows)
	}
	if cfg.Physics.Gravity != 0.05 || cfg.Physics.BoostVelocity != -0.5 {
		t.Errorf("default physics = %+v", cfg.Physics)
	}
	if cfg.Obstacles.Radius != 3 || cfg.Obstacles.OpeningWidth != 7 {
		t.Errorf("default obstacles = %+v", cfg.Obstacles)
	}
}
