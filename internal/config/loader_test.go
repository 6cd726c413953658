package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded YAML and DefaultSnakeConfig() differ:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte(`
grid:
  width: 21
  height: 21
pathfinding:
  heuristic: manhattan
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Width != 21 || cfg.Grid.Height != 21 {
		t.Errorf("grid = %+v, expected 21x21", cfg.Grid)
	}
	if cfg.Pathfinding.Heuristic != "manhattan" {
		t.Errorf("heuristic = %q, expected manhattan", cfg.Pathfinding.Heuristic)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Timing.UpdateInterval != 10 || cfg.Obstacles.RandomCount != 60 {
		t.Errorf("defaults not kept for missing keys: %+v", cfg)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(broken); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid: {width: 2, height: 2}\ntiming: {update_interval: 0}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(invalid)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"grid", "update_interval"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"defaults", func(*SnakeConfig) {}, false},
		{"tiny grid", func(c *SnakeConfig) { c.Grid.Width = 1 }, true},
		{"inverted add range", func(c *SnakeConfig) { c.Obstacles.AddMin, c.Obstacles.AddMax = 5, 4 }, true},
		{"no attempts", func(c *SnakeConfig) { c.Obstacles.PlacementAttempts = 0 }, true},
		{"unknown heuristic", func(c *SnakeConfig) { c.Pathfinding.Heuristic = "dijkstra" }, true},
		{"unknown progression", func(c *SnakeConfig) { c.Difficulty.Progression.Type = "random" }, true},
		{"manhattan", func(c *SnakeConfig) { c.Pathfinding.Heuristic = "manhattan" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplySnakePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Timing.UpdateInterval != 6 || cfg.Obstacles.RandomCount != 90 {
		t.Errorf("hard preset did not tighten timing/obstacles: %+v", cfg)
	}

	cfg = DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultSnakeConfig()
	ApplySnakePreset(&cfg, "")
	if cfg != DefaultSnakeConfig() {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
