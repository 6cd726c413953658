package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pathsnake/internal/games/snake"
)

func press(m ModeModel, msg tea.KeyMsg) ModeModel {
	next, _ := m.Update(msg)
	return next.(ModeModel)
}

func TestModeModelSelect(t *testing.T) {
	m := NewModeModel(80, 24)
	if _, ok := m.Selected(); ok {
		t.Fatal("nothing should be selected yet")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}) // clamped at the last option
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	mode, ok := m.Selected()
	if !ok || mode != snake.ModeRandom {
		t.Errorf("Selected() = (%q, %v), expected random", mode, ok)
	}
}

func TestModeModelQuit(t *testing.T) {
	m := press(NewModeModel(80, 24), keyRunes("q"))
	if !m.IsQuitting() {
		t.Error("expected quitting")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestModeModelView(t *testing.T) {
	view := NewModeModel(80, 24).View()
	for _, want := range []string{"Maze", "Random", "> Maze"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() = %q", got)
	}
}
