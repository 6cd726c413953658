package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathsnake/internal/astar"
	"github.com/vovakirdan/pathsnake/internal/core"
	"github.com/vovakirdan/pathsnake/internal/grid"
	"github.com/vovakirdan/pathsnake/internal/maze"
)

var (
	flagMazeWidth  int
	flagMazeHeight int
	flagMazeRoute  bool
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print a generated maze",
	Long: `Generate a maze the way maze mode does and print it. The A* route
from the spawn cell to the open cell farthest from it is drawn on top.

Examples:
  pathsnake maze
  pathsnake maze --width 41 --height 21 --seed 3
  pathsnake maze --route=false`,
	RunE: runMaze,
}

func init() {
	mazeCmd.Flags().IntVar(&flagMazeWidth, "width", 0, "Maze width in cells (default: config grid width)")
	mazeCmd.Flags().IntVar(&flagMazeHeight, "height", 0, "Maze height in cells (default: config grid height)")
	mazeCmd.Flags().BoolVar(&flagMazeRoute, "route", true, "Draw the route to the farthest cell")
}

var (
	wallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	routeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	endStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	spawnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func runMaze(_ *cobra.Command, _ []string) error {
	width, height := flagMazeWidth, flagMazeHeight
	if width == 0 {
		width = snakeCfg.Grid.Width
	}
	if height == 0 {
		height = snakeCfg.Grid.Height
	}
	if width < 3 || height < 3 {
		return fmt.Errorf("maze must be at least 3x3, got %dx%d", width, height)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h, err := astar.ParseHeuristic(snakeCfg.Pathfinding.Heuristic)
	if err != nil {
		return err
	}

	g := grid.New(width, height)
	g.Obstacles = maze.Generate(width, height, rand.New(rand.NewSource(seed)))
	spawn := g.Center()

	var route []core.Cell
	end, dist, _ := maze.Farthest(width, height, g.Obstacles, spawn)
	if flagMazeRoute && dist > 0 {
		finder := astar.New(h)
		path, ok := finder.FindPath(spawn, end, g.Blocker(grid.Context{Layers: grid.Movement}))
		if ok {
			route = path
		}
		logger.Debug("route found", "found", ok, "length", len(path), "expanded", finder.Stats.Expanded)
	}

	fmt.Print(renderMaze(g, route))
	fmt.Printf("seed %d  %dx%d  walls %d", seed, width, height, g.Obstacles.Len())
	if route != nil {
		fmt.Printf("  route %d steps to %s", len(route)-1, end)
	}
	fmt.Println()
	return nil
}

// renderMaze draws walls, the spawn cell and the route, two columns per cell.
func renderMaze(g *grid.Grid, route []core.Cell) string {
	onRoute := grid.NewCellSet(route...)
	spawn := g.Center()

	var b strings.Builder
	for y := range g.Height {
		for x := range g.Width {
			c := core.C(x, y)
			switch {
			case g.Obstacles.Has(c):
				b.WriteString(wallStyle.Render("██"))
			case c == spawn:
				b.WriteString(spawnStyle.Render("@@"))
			case len(route) > 0 && c == route[len(route)-1]:
				b.WriteString(endStyle.Render("<>"))
			case onRoute.Has(c):
				b.WriteString(routeStyle.Render(" ·"))
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
