package snake

import (
	"fmt"

	"github.com/vovakirdan/pathsnake/internal/core"
)

const (
	hudHeight = 1
	cellWidth = 2 // terminal columns per grid cell
)

// RequiredSize returns the smallest screen that fits the HUD and the framed board.
// The HUD is sized for the largest score and length the board allows, so the
// requirement does not change during a session.
func (g *Game) RequiredSize() (w, h int) {
	cells := g.cfg.Grid.Width * g.cfg.Grid.Height
	hudW := len([]rune(g.hudText(cells, cells, "MANUAL")))
	return max(g.cfg.Grid.Width*cellWidth+2, hudW), g.cfg.Grid.Height + hudHeight + 2
}

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	needW, needH := g.RequiredSize()
	if dst.Width() < needW || dst.Height() < needH {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small")
		dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()))
		return
	}

	g.renderHUD(dst)

	boardW := g.cfg.Grid.Width*cellWidth + 2
	frame := core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, g.cfg.Grid.Height+2)
	dst.DrawBox(frame, core.ColorGray)
	originX, originY := frame.X+1, frame.Y+1

	put := func(c core.Cell, left, right rune, color core.Color) {
		x := originX + c.X*cellWidth
		y := originY + c.Y
		dst.SetColored(x, y, left, color)
		dst.SetColored(x+1, y, right, color)
	}

	for _, c := range g.board.Obstacles.Cells() {
		put(c, '█', '█', core.ColorGray)
	}
	if g.autopilot && g.alive {
		for _, c := range g.pilot.path {
			put(c, ' ', '·', core.ColorCyan)
		}
	}
	if g.hasFood {
		put(g.food, '<', '>', core.ColorBrightRed)
	}
	for i := len(g.snake.cells) - 1; i >= 0; i-- {
		if i == 0 {
			put(g.snake.cells[i], '█', '█', core.ColorBrightGreen)
		} else {
			put(g.snake.cells[i], '▓', '▓', core.ColorGreen)
		}
	}

	switch {
	case !g.alive:
		g.renderOverlay(dst, "Game Over: "+describe(g.reason), "R to restart, Q to quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	control := "MANUAL"
	if g.autopilot {
		control = "AUTO"
	}
	dst.DrawText(0, 0, g.hudText(g.score, g.snake.Length(), control))
}

func (g *Game) hudText(score, length int, control string) string {
	return fmt.Sprintf(" %s | Score: %d | Length: %d | %s", g.Title(), score, length, control)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect(
		core.Clamp((dst.Width()-boxW)/2, 0, max(0, dst.Width()-boxW)),
		core.Clamp((dst.Height()-boxH)/2, hudHeight, max(hudHeight, dst.Height()-boxH)),
		boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func describe(r DeathReason) string {
	switch r {
	case ReasonWall:
		return "hit the wall"
	case ReasonSelf:
		return "bit itself"
	case ReasonObstacle:
		return "hit an obstacle"
	case ReasonStuck:
		return "no path to food"
	case ReasonUnreachable:
		return "food walled off"
	case ReasonBoardFull:
		return "board full"
	default:
		return "ended"
	}
}
