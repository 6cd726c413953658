// pathsnake is a terminal snake game whose snake can be driven by an A*
// autopilot through mazes or randomly scattered obstacles.
//
// Usage:
//
//	pathsnake list                  - List available game modes
//	pathsnake play [maze|random]    - Play in the terminal
//	pathsnake serve                 - Start SSH server for remote play
//	pathsnake bench                 - Run headless autopilot sessions
//	pathsnake runs                  - Browse recorded bench runs
//	pathsnake maze                  - Print a generated maze and its longest route
//
// Global flags:
//
//	--fps <rate>           - Set frame rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible sessions
//	--config <path>        - Custom snake config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathsnake/internal/config"
	"github.com/vovakirdan/pathsnake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var (
	// snakeCfg is the loaded configuration with the difficulty preset applied.
	snakeCfg = config.DefaultSnakeConfig()
	logger   = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathsnake",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathsnake",
	Short: "Path Snake - a snake game with an A* autopilot",
	Long: `Path Snake is a terminal snake game. Steer it yourself or hand the
wheel to an A* autopilot that routes around maze walls and random obstacles.

Available commands:
  list     - Show all game modes
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  bench    - Run headless autopilot sessions and record them
  runs     - Browse recorded bench runs
  maze     - Print a generated maze

Examples:
  pathsnake play maze
  pathsnake play random --difficulty hard
  pathsnake serve --ssh :2222
  pathsnake bench --mode random --runs 50 --workers 4
  pathsnake maze --width 31 --height 15 --seed 7`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(mazeCmd)
}

// setup configures logging and loads the snake config shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	snakeCfg = cfg
	snake.SetConfig(cfg)
	logger.Debug("config loaded",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"heuristic", cfg.Pathfinding.Heuristic,
		"difficulty", cfg.Difficulty.Enabled)
	return nil
}

// loadConfig reads the config file and applies a difficulty preset, if any.
func loadConfig(path, difficulty string) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplySnakePreset(&cfg, preset)
	}
	return cfg, nil
}
