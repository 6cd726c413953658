package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pathsnake/internal/core"
)

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}, "alice", nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.gameModel == nil {
		t.Fatal("selecting a mode should start a game")
	}
	if id := m.gameModel.game.ID(); id != "snake_maze" {
		t.Errorf("game = %q, expected snake_maze", id)
	}

	m.gameModel.game.Reset(m.gameModel.config)
	if view := m.View(); !strings.Contains(view, "Score: 0") {
		t.Errorf("game view missing HUD:\n%s", view)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.gameModel != nil {
		t.Error("esc should return to the mode selector")
	}
	if m.quitting {
		t.Error("esc should not end the session")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(SessionModel)
	if !m.quitting || m.View() != "" {
		t.Error("q in the selector should end the session")
	}
}

func TestSnakeGameID(t *testing.T) {
	for _, mode := range modeOptions {
		if got := snakeGameID(mode.mode); !strings.HasPrefix(got, "snake_") {
			t.Errorf("snakeGameID(%q) = %q", mode.mode, got)
		}
	}
}
