package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pathsnake/internal/core"
	"github.com/vovakirdan/pathsnake/internal/games/snake"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// modeOption is one entry in the mode selector.
type modeOption struct {
	mode  snake.Mode
	label string
	blurb string
}

var modeOptions = []modeOption{
	{snake.ModeMaze, "Maze", "randomized depth-first maze"},
	{snake.ModeRandom, "Random", "scattered obstacles"},
}

// ModeModel lets users choose the obstacle layout.
type ModeModel struct {
	cursor   int
	width    int
	height   int
	selected snake.Mode
	choosing bool
	quitting bool
}

// NewModeModel creates a new mode selection model.
func NewModeModel(width, height int) ModeModel {
	return ModeModel{
		width:    width,
		height:   height,
		choosing: true,
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(modeOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = modeOptions[m.cursor].mode
		return m, tea.Quit
	}
	return m, nil
}

// View renders the mode selection.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("P A T H   S N A K E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board layout:", m.width))
	b.WriteString("\n\n")

	for i, opt := range modeOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-8s %s", cursor, opt.label, opt.blurb), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("Enter: Select  |  Q: Quit", m.width)))
	return b.String()
}

// Selected returns the chosen mode; ok is false while still choosing.
func (m ModeModel) Selected() (mode snake.Mode, ok bool) {
	return m.selected, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// RunModeSelector shows the mode selector and returns the chosen mode.
// ok is false when the user quit.
func RunModeSelector(cfg core.RuntimeConfig) (mode snake.Mode, ok bool, err error) {
	p := tea.NewProgram(
		NewModeModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMode := finalModel.(ModeModel)
	if !isMode || m.IsQuitting() {
		return "", false, nil
	}
	mode, ok = m.Selected()
	return mode, ok, nil
}

// centerText pads text on the left so it is centered within width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
