package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "guardian.yaml")

	content := []byte(`
world:
  width: 800
  height: 600
  obstacle_count: 5
session:
  lives: 3
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadGuardian(path)
	if err != nil {
		t.Fatalf("LoadGuardian() failed: %v", err)
	}

	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Errorf("World size = %vx%v, expected 800x600", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.ObstacleCount != 5 {
		t.Errorf("ObstacleCount = %d, expected 5", cfg.World.ObstacleCount)
	}
	if cfg.Session.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Session.Lives)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadGuardian("/nonexistent/guardian.yaml")
	if err == nil {
		t.Error("LoadGuardian() should fail for a missing custom path")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree so that
	// both code paths produce the same game.
	var cfg GuardianConfig
	if err := yaml.Unmarshal(defaultGuardianYAML, &cfg); err != nil {
		t.Fatalf("embedded default did not parse: %v", err)
	}

	want := DefaultGuardianConfig()
	if cfg != want {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", cfg, want)
	}
}
