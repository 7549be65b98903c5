package tui

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *minesweeper.Game) {
	t.Helper()
	game, err := registry.Create("beginner")
	if err != nil {
		t.Fatalf("registry.Create() failed: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 10, Seed: 7}
	m := NewModel(game, store, cfg, WithPlayer("alice"))
	m.Init()
	return m, game.(*minesweeper.Game)
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func tick(m Model) Model {
	return send(m, TickMsg{ID: m.tickID})
}

func press(m Model, k tea.KeyMsg) Model {
	return tick(send(m, k))
}

// moveTo walks the cursor to a cell one key per frame.
func moveTo(t *testing.T, m Model, g *minesweeper.Game, idx int) Model {
	t.Helper()
	w := g.Snapshot().Config.Width
	row, col := idx/w, idx%w
	for range 100 {
		r, c := g.Cursor()
		switch {
		case r < row:
			m = press(m, tea.KeyMsg{Type: tea.KeyDown})
		case r > row:
			m = press(m, tea.KeyMsg{Type: tea.KeyUp})
		case c < col:
			m = press(m, tea.KeyMsg{Type: tea.KeyRight})
		case c > col:
			m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
		default:
			return m
		}
	}
	t.Fatalf("cursor never reached cell %d", idx)
	return m
}

func firstMine(g *minesweeper.Game) int {
	return g.Snapshot().Board.MineIndices()[0]
}

func TestModelSavesLostRoundOnce(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store)

	m = moveTo(t, m, g, firstMine(g))
	m = press(m, runeKey(' '))

	if !m.State().GameOver || m.State().Won {
		t.Fatalf("expected a lost round, got %+v", m.State())
	}

	m = tick(tick(m))

	results, err := store.RecentResults("beginner", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(results))
	}
	r := results[0]
	if r.Player != "alice" || r.Won || r.Cause != "You hit a mine." {
		t.Errorf("unexpected result %+v", r)
	}
	if r.Width != 5 || r.Height != 5 || r.Mines != 5 {
		t.Errorf("expected a 5x5/5 board in result, got %dx%d/%d", r.Width, r.Height, r.Mines)
	}
}

func TestModelRestartSavesNextRound(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store)

	m = moveTo(t, m, g, firstMine(g))
	m = press(m, runeKey(' '))
	m = press(m, runeKey('r'))

	if m.State().GameOver {
		t.Fatal("restart should start a new round")
	}

	m = moveTo(t, m, g, firstMine(g))
	m = press(m, runeKey(' '))
	if !m.State().GameOver {
		t.Fatal("expected the second round to be lost")
	}

	stats, err := store.GameStats("beginner")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Played != 2 {
		t.Errorf("Played = %d, expected 2", stats.Played)
	}
}

func TestModelSavesWin(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store)

	for !m.State().GameOver {
		s := g.Snapshot()
		target := -1
		for i := range s.Board.Len() {
			if c := s.Cell(i); !c.Mine && !c.Revealed {
				target = i
				break
			}
		}
		m = moveTo(t, m, g, target)
		m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	}

	best, err := store.BestTimes("beginner", 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 1 || !best[0].Won || best[0].CellsRevealed != 20 {
		t.Errorf("expected one winning result with 20 cells, got %+v", best)
	}
}

func TestModelMouseReveal(t *testing.T) {
	m, g := newTestModel(t, nil)

	// Locate a covered cell on screen by its glyph position on the rendered grid.
	screen := core.NewScreen(80, 30)
	g.Render(screen)
	x, y := -1, -1
	for row := range screen.Height() {
		if i := strings.IndexRune(screen.Row(row), '·'); i >= 0 {
			x, y = len([]rune(screen.Row(row)[:i])), row
			break
		}
	}
	if x < 0 {
		t.Fatal("no covered cell on screen")
	}

	m = send(m,
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	m = tick(m)

	if g.Snapshot().RevealedCount() == 0 {
		t.Error("click should reveal a cell")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(TickMsg{ID: m.tickID + 1000})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if _, cmd := m.Update(TickMsg{ID: m.tickID}); cmd == nil {
		t.Error("current tick should schedule the next tick")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m, g := newTestModel(t, nil)
	before := g.Snapshot().Board.MineIndices()

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if after := g.Snapshot().Board.MineIndices(); !slices.Equal(before, after) {
		t.Errorf("resize should keep the board, mines %v became %v", before, after)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored while a round is running")
	}

	m = moveTo(t, m, g, firstMine(g))
	m = press(m, runeKey(' '))
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should return to the menu after game over")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}
