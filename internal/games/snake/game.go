package snake

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/pathsnake/internal/astar"
	"github.com/vovakirdan/pathsnake/internal/config"
	"github.com/vovakirdan/pathsnake/internal/core"
	"github.com/vovakirdan/pathsnake/internal/grid"
	"github.com/vovakirdan/pathsnake/internal/maze"
	"github.com/vovakirdan/pathsnake/internal/obstacles"
	"github.com/vovakirdan/pathsnake/internal/registry"
)

// Mode selects how the obstacle set is laid out at reset.
type Mode string

const (
	ModeMaze   Mode = "maze"
	ModeRandom Mode = "random"
)

// ParseMode validates a mode name.
func ParseMode(name string) (Mode, bool) {
	switch m := Mode(name); m {
	case ModeMaze, ModeRandom:
		return m, true
	default:
		return "", false
	}
}

// DeathReason records why a session ended.
type DeathReason string

const (
	ReasonNone        DeathReason = ""
	ReasonWall        DeathReason = "wall"
	ReasonSelf        DeathReason = "self"
	ReasonObstacle    DeathReason = "obstacle"
	ReasonStuck       DeathReason = "stuck"       // autopilot found no path
	ReasonUnreachable DeathReason = "unreachable" // new obstacles cut off the food
	ReasonBoardFull   DeathReason = "board_full"  // no free cell left for food
)

// TickResult is reported by every Tick call.
type TickResult struct {
	Alive bool
	Grew  bool
	Score int
}

// Session-wide config for games created through the registry. The CLI sets it
// once before any game is created.
var (
	sessionMu  sync.RWMutex
	sessionCfg = config.DefaultSnakeConfig()
)

// SetConfig sets the configuration used by registry-created games.
func SetConfig(cfg config.SnakeConfig) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	sessionCfg = cfg
}

func currentConfig() config.SnakeConfig {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	return sessionCfg
}

func init() {
	registry.Register("snake_maze", func() registry.Game {
		return New(ModeMaze, currentConfig())
	})
	registry.Register("snake_random", func() registry.Game {
		return New(ModeRandom, currentConfig())
	})
}

// Game is one snake session: board, snake, food and the autopilot.
type Game struct {
	mode       Mode
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	heuristic  astar.Heuristic

	rng    *rand.Rand
	board  *grid.Grid
	placer *obstacles.Placer
	snake  *Snake
	pilot  *Autopilot

	food    core.Cell
	hasFood bool

	autopilot bool
	frame     uint64 // Step/Tick calls since reset
	sinceMove int    // frames since the last logical step
	steps     int    // logical steps taken
	score     int
	alive     bool
	reason    DeathReason
	paused    bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a session for mode. Call Reset or ResetMode before use.
func New(mode Mode, cfg config.SnakeConfig) *Game {
	h, err := astar.ParseHeuristic(cfg.Pathfinding.Heuristic)
	if err != nil {
		h = astar.SquaredEuclidean
	}
	if cfg.Timing.UpdateInterval < 1 {
		cfg.Timing.UpdateInterval = 1
	}
	return &Game{
		mode:       mode,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		heuristic:  h,
		autopilot:  cfg.Autopilot.Enabled,
		rng:        rand.New(rand.NewSource(0)),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake_" + string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMaze {
		return "Path Snake (Maze)"
	}
	return "Path Snake (Random)"
}

// Mode returns the obstacle layout mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset reseeds the session and rebuilds it in its current mode.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.ResetMode(g.mode)
}

// Resize records the screen size without touching the session. The session
// is frozen while the board does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	needW, needH := g.RequiredSize()
	g.tooSmall = w > 0 && h > 0 && (w < needW || h < needH)
}

// ResetMode discards the snake, food and path and lays out a fresh board
// for mode. Obstacles come first so food never lands inside a wall.
func (g *Game) ResetMode(mode Mode) {
	g.mode = mode
	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height

	g.board = grid.New(w, h)
	g.placer = obstacles.NewPlacer(g.board, g.rng, obstacles.Options{
		AddMin:   g.cfg.Obstacles.AddMin,
		AddMax:   g.cfg.Obstacles.AddMax,
		Attempts: g.cfg.Obstacles.PlacementAttempts,
	})

	center := g.board.Center()
	switch mode {
	case ModeMaze:
		g.board.Obstacles = maze.Generate(w, h, g.rng)
	default:
		g.placer.GenerateRandom(g.cfg.Obstacles.RandomCount)
		for _, c := range maze.SpawnArea(center).Cells() {
			g.board.Obstacles.Remove(c)
		}
	}

	g.snake = NewSnake(center, core.Right)
	g.pilot = NewAutopilot(g.heuristic)
	g.frame = 0
	g.sinceMove = 0
	g.steps = 0
	g.score = 0
	g.alive = true
	g.reason = ReasonNone
	g.paused = false
	g.hasFood = false
	g.placeFood()
}

// Step maps one frame of platform input onto the session and ticks it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && !g.alive {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.alive {
		g.paused = !g.paused
	}
	if g.tooSmall || g.paused || !g.alive {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionToggleAuto) {
		g.ToggleAutopilot()
	}
	switch {
	case in.Has(core.ActionUp):
		g.SetDirection(0, -1)
	case in.Has(core.ActionDown):
		g.SetDirection(0, 1)
	case in.Has(core.ActionLeft):
		g.SetDirection(-1, 0)
	case in.Has(core.ActionRight):
		g.SetDirection(1, 0)
	}
	if in.Has(core.ActionAddObstacles) {
		g.AddObstacles()
	}

	g.Tick()
	return core.StepResult{State: g.State()}
}

// Tick counts one frame and advances the session every Interval() frames.
// Frames in between change nothing.
func (g *Game) Tick() TickResult {
	if !g.alive || g.paused {
		return g.result(false)
	}
	g.frame++
	g.sinceMove++
	if g.sinceMove < g.Interval() {
		return g.result(false)
	}
	g.sinceMove = 0
	return g.result(g.advance())
}

// Interval returns the current frames per logical step.
func (g *Game) Interval() int {
	return g.difficulty.Interval(g.cfg.Timing.UpdateInterval, g.score, g.steps)
}

// advance performs one logical step and reports whether the snake ate.
func (g *Game) advance() bool {
	if g.autopilot {
		dir, ok := g.pilot.Next(g.board, g.snake, g.food)
		if !ok {
			g.die(ReasonStuck)
			return false
		}
		g.snake.SetDirection(dir)
	}

	next := g.snake.Next()
	if reason := g.collision(next); reason != ReasonNone {
		g.die(reason)
		return false
	}
	g.snake.Advance()
	g.steps++

	if !g.hasFood || next != g.food {
		return false
	}
	g.snake.Grow()
	g.score++
	g.pilot.Clear()
	g.placeFood()
	return true
}

// collision classifies what the head would hit at c.
func (g *Game) collision(c core.Cell) DeathReason {
	switch {
	case !g.board.InBounds(c):
		return ReasonWall
	case g.board.Obstacles.Has(c):
		return ReasonObstacle
	case g.board.IsBlocked(c, grid.Context{Layers: grid.LayerBody, Snake: g.snake.cells}):
		return ReasonSelf
	default:
		return ReasonNone
	}
}

// placeFood moves the food to a uniformly random free cell.
func (g *Game) placeFood() {
	free := g.board.FreeCells(g.occupants(grid.FoodPlacement))
	if len(free) == 0 {
		g.hasFood = false
		g.die(ReasonBoardFull)
		return
	}
	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
}

func (g *Game) occupants(layers grid.Layer) grid.Context {
	return grid.Context{
		Layers:  layers,
		Snake:   g.snake.cells,
		Food:    g.food,
		HasFood: g.hasFood,
	}
}

func (g *Game) die(reason DeathReason) {
	g.alive = false
	g.reason = reason
	g.paused = false
}

// SetDirection steers the snake. It is ignored under autopilot, when dead,
// and for exact reversals of the current heading.
func (g *Game) SetDirection(dx, dy int) {
	if g.autopilot || !g.alive {
		return
	}
	g.snake.SetDirection(core.Direction{DX: dx, DY: dy})
}

// ToggleAutopilot flips between autopilot and manual control.
func (g *Game) ToggleAutopilot() {
	g.autopilot = !g.autopilot
	g.pilot.Clear()
}

// AddObstacles drops a random batch of obstacles away from the snake's head.
// It returns how many were placed.
func (g *Game) AddObstacles() int {
	if !g.alive {
		return 0
	}
	added := g.placer.AddRandom(g.occupants(grid.ObstaclePlacement))
	g.obstaclesChanged()
	return added
}

// PlaceObstacles adds the given cells as obstacles, skipping any that lie
// off the board or on the snake or food. It returns how many were placed.
func (g *Game) PlaceObstacles(cells ...core.Cell) int {
	if !g.alive {
		return 0
	}
	ctx := g.occupants(grid.ObstaclePlacement)
	added := 0
	for _, c := range cells {
		if g.board.IsBlocked(c, ctx) {
			continue
		}
		if g.board.Obstacles.Add(c) {
			added++
		}
	}
	g.obstaclesChanged()
	return added
}

// obstaclesChanged invalidates the path and ends the session when the food
// has been walled off.
func (g *Game) obstaclesChanged() {
	g.pilot.Clear()
	if g.hasFood && !g.pilot.Reachable(g.board, g.snake, g.food) {
		g.die(ReasonUnreachable)
	}
}

func (g *Game) result(grew bool) TickResult {
	return TickResult{Alive: g.alive, Grew: grew, Score: g.score}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: !g.alive,
		Paused:   g.paused,
		Reason:   string(g.reason),
	}
}

// SnakeCells returns the snake cells, head first.
func (g *Game) SnakeCells() []core.Cell { return g.snake.Cells() }

// Food returns the food cell; ok is false when the board is full.
func (g *Game) Food() (core.Cell, bool) { return g.food, g.hasFood }

// ObstacleCells returns the obstacle cells in placement order.
func (g *Game) ObstacleCells() []core.Cell { return g.board.Obstacles.Cells() }

// Score returns the food eaten this session.
func (g *Game) Score() int { return g.score }

// Autopilot reports whether the autopilot is steering.
func (g *Game) Autopilot() bool { return g.autopilot }

// Alive reports whether the session is still running.
func (g *Game) Alive() bool { return g.alive }

// Reason returns why the session ended, or ReasonNone.
func (g *Game) Reason() DeathReason { return g.reason }

// Path returns the autopilot's cached path, head first.
func (g *Game) Path() []core.Cell { return g.pilot.Path() }

// Steps returns the number of logical steps taken.
func (g *Game) Steps() int { return g.steps }

// SearchStats returns the pathfinder statistics for this session.
func (g *Game) SearchStats() astar.Stats { return g.pilot.Stats() }

// Board returns the grid dimensions.
func (g *Game) Board() (width, height int) { return g.board.Width, g.board.Height }
