package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-zeta", func() Game { return &stubGame{id: "test-zeta", title: "Zeta"} })
	Register("test-alpha", func() Game { return &stubGame{id: "test-alpha", title: "Alpha"} })

	if !Exists("test-alpha") {
		t.Error("Exists(test-alpha) = false after Register")
	}
	if Exists("test-missing") {
		t.Error("Exists(test-missing) = true")
	}

	g, err := Create("test-zeta")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test-zeta" || g.Title() != "Zeta" {
		t.Errorf("Create() returned %q/%q", g.ID(), g.Title())
	}

	// Each Create returns a fresh instance.
	g2, _ := Create("test-zeta")
	if g == g2 {
		t.Error("Create() should return a new instance each time")
	}

	alpha, zeta := -1, -1
	for i, info := range List() {
		switch info.ID {
		case "test-alpha":
			alpha = i
			if info.Title != "Alpha" {
				t.Errorf("List() title = %q, expected Alpha", info.Title)
			}
		case "test-zeta":
			zeta = i
		}
	}
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Errorf("List() should contain both games sorted by ID, got positions %d and %d", alpha, zeta)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("test-nope")
	if err == nil {
		t.Fatal("Create() should fail for unknown ID")
	}
	if !strings.Contains(err.Error(), "test-nope") {
		t.Errorf("error should name the game, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register with the same ID should panic")
		}
	}()
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })
}
