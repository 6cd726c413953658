package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration. It mirrors
// defaults/snake.yaml and is used if the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  39,
			Height: 19,
		},
		Timing: TimingConfig{
			UpdateInterval: 10,
		},
		Obstacles: ObstaclesConfig{
			RandomCount:       60,
			AddMin:            10,
			AddMax:            20,
			PlacementAttempts: 10,
		},
		Pathfinding: PathfindingConfig{
			Heuristic: "squared_euclidean",
		},
		Autopilot: AutopilotConfig{
			Enabled: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
