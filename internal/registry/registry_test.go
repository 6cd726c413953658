package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pathsnake/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("test_b", func() Game { return stubGame{"test_b"} })
	Register("test_a", func() Game { return stubGame{"test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists reported wrong membership")
	}

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("Create returned %q", g.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("expected error for unknown id")
	}

	list := List()
	var ids []string
	for _, info := range list {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test_a" || ids[1] != "test_b" {
		t.Errorf("expected sorted [test_a test_b], got %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return stubGame{"test_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test_dup", func() Game { return stubGame{"test_dup"} })
}
