package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pathsnake/internal/core"
	"github.com/vovakirdan/pathsnake/internal/games/snake"
	"github.com/vovakirdan/pathsnake/internal/platform/tui"
	"github.com/vovakirdan/pathsnake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [maze|random]",
	Short: "Play a session in the terminal",
	Long: `Start a snake session. Without an argument a mode picker is shown.

Controls:
  Arrows/WASD  - Steer (manual mode)
  Tab          - Toggle autopilot
  O            - Drop a batch of random obstacles
  P            - Pause
  R/Space      - Restart (after game over)
  Esc/B        - Back to the mode picker
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, speeds up as the score grows
  normal - Moderate start, speeds up as the score grows
  hard   - Fast start, denser random obstacles
  fixed  - Constant speed

Examples:
  pathsnake play
  pathsnake play maze
  pathsnake play random --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	var (
		mode   snake.Mode
		picked bool
	)
	if len(args) == 1 {
		m, ok := snake.ParseMode(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'pathsnake list' to see available modes.")
			os.Exit(1)
		}
		mode, picked = m, true
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	for {
		if !picked {
			m, ok, err := tui.RunModeSelector(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !ok {
				return
			}
			mode = m
		}

		game, err := registry.Create("snake_" + string(mode))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		logger.Debug("starting session", "mode", mode, "seed", cfg.Seed)
		back, err := tui.Run(game, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		if !back {
			return
		}
		picked = false
	}
}
