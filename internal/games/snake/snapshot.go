package snake

import "github.com/vovakirdan/pathsnake/internal/core"

// GameStateType represents the current session state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the session state for determinism testing and logs.
// It is comparable with ==.
type Snapshot struct {
	Frame     uint64
	Steps     int
	Mode      Mode
	Score     int
	Length    int // target length
	Cells     int // occupied cells
	Head      core.Cell
	Dir       core.Direction
	Food      core.Cell
	Obstacles int
	PathLen   int
	Autopilot bool
	Interval  int
	State     GameStateType
	Reason    DeathReason
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case !g.alive:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Frame:     g.frame,
		Steps:     g.steps,
		Mode:      g.mode,
		Score:     g.score,
		Length:    g.snake.Length(),
		Cells:     len(g.snake.cells),
		Head:      g.snake.Head(),
		Dir:       g.snake.Direction(),
		Food:      g.food,
		Obstacles: g.board.Obstacles.Len(),
		PathLen:   len(g.pilot.path),
		Autopilot: g.autopilot,
		Interval:  g.Interval(),
		State:     state,
		Reason:    g.reason,
	}
}
