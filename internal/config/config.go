// Package config provides YAML-based session configuration loading and
// difficulty management for the snake game.
package config

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Timing      TimingConfig      `yaml:"timing"`
	Obstacles   ObstaclesConfig   `yaml:"obstacles"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`
	Autopilot   AutopilotConfig   `yaml:"autopilot"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines how often the simulation advances.
type TimingConfig struct {
	UpdateInterval int `yaml:"update_interval"` // Frames per logical step
}

// ObstaclesConfig defines random obstacle density.
type ObstaclesConfig struct {
	RandomCount       int `yaml:"random_count"`       // Initial samples in random mode
	AddMin            int `yaml:"add_min"`            // Fewest obstacles per "add" event
	AddMax            int `yaml:"add_max"`            // Most obstacles per "add" event
	PlacementAttempts int `yaml:"placement_attempts"` // Tries per obstacle before giving up
}

// PathfindingConfig selects the A* heuristic.
type PathfindingConfig struct {
	Heuristic string `yaml:"heuristic"` // "squared_euclidean" or "manhattan"
}

// AutopilotConfig controls the initial control mode.
type AutopilotConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/steps at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed gained at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
