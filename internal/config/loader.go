package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.pathsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Missing keys keep their default values.
	cfg := DefaultSnakeConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("snake.yaml"), filepath.Join("configs", "snake.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultSnakeConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathsnake", "configs", filename)
}

// ParsePreset validates a --difficulty value. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Timing.UpdateInterval = 14
		cfg.Obstacles.RandomCount = 40
	case DifficultyHard:
		cfg.Timing.UpdateInterval = 6
		cfg.Obstacles.RandomCount = 90
	}
}

// Validate reports every out-of-range field.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Width < 3 || c.Grid.Height < 3 {
		errs = append(errs, fmt.Errorf("grid must be at least 3x3, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Timing.UpdateInterval < 1 {
		errs = append(errs, fmt.Errorf("timing.update_interval must be >= 1, got %d", c.Timing.UpdateInterval))
	}
	if c.Obstacles.RandomCount < 0 {
		errs = append(errs, fmt.Errorf("obstacles.random_count must be >= 0, got %d", c.Obstacles.RandomCount))
	}
	if c.Obstacles.AddMin < 0 || c.Obstacles.AddMax < c.Obstacles.AddMin {
		errs = append(errs, fmt.Errorf("obstacles.add_min/add_max must satisfy 0 <= min <= max, got %d/%d",
			c.Obstacles.AddMin, c.Obstacles.AddMax))
	}
	if c.Obstacles.PlacementAttempts < 1 {
		errs = append(errs, fmt.Errorf("obstacles.placement_attempts must be >= 1, got %d", c.Obstacles.PlacementAttempts))
	}
	switch c.Pathfinding.Heuristic {
	case "", "squared_euclidean", "manhattan":
	default:
		errs = append(errs, fmt.Errorf("pathfinding.heuristic %q is not supported", c.Pathfinding.Heuristic))
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not supported", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}
