package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var testScreen = core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 10}

func updateMenu(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuItemsFollowConfigOrder(t *testing.T) {
	m := NewMenuModel(nil, testScreen)

	want := []string{"beginner", "intermediate", "advanced", "custom"}
	if len(m.items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(m.items))
	}
	for i, id := range want {
		if m.items[i].GameID != id {
			t.Errorf("item %d = %q, expected %q", i, m.items[i].GameID, id)
		}
	}
	if m.items[0].Board != "5x5, 5 mines" {
		t.Errorf("Board = %q, expected %q", m.items[0].Board, "5x5, 5 mines")
	}
	if m.cursor != 0 {
		t.Errorf("cursor should start on the default preset, got %d", m.cursor)
	}
}

func TestMenuShowsBestTime(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.Result{
		{GameID: "intermediate", Won: true, Elapsed: 91},
		{GameID: "intermediate", Won: true, Elapsed: 57},
		{GameID: "intermediate", Won: false, Elapsed: 3},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewMenuModel(store, testScreen)
	if m.items[1].Best != 57 {
		t.Errorf("Best = %d, expected 57", m.items[1].Best)
	}
	if m.items[0].Best != 0 {
		t.Errorf("unplayed board Best = %d, expected 0", m.items[0].Best)
	}
	if !strings.Contains(m.View(), "best 57s") {
		t.Error("view should show the best time")
	}
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel(nil, testScreen)

	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should stay at top, got %d", m.cursor)
	}

	m = updateMenu(m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	if m.cursor != 3 {
		t.Errorf("cursor should stop at the last item, got %d", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil {
		t.Error("select should end the menu program")
	}
	res := m.Result()
	if res.GameID != "custom" || res.Quit || res.WantsScoreboard {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := updateMenu(NewMenuModel(nil, testScreen), tea.KeyMsg{Type: tea.KeyTab})
	if res := m.Result(); !res.WantsScoreboard {
		t.Errorf("tab should request the scoreboard, got %+v", res)
	}

	m = updateMenu(NewMenuModel(nil, testScreen), runeKey('q'))
	if res := m.Result(); !res.Quit {
		t.Errorf("q should quit, got %+v", res)
	}
	if m.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := updateMenu(NewMenuModel(nil, testScreen), tea.WindowSizeMsg{Width: 120, Height: 50})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %dx%d, expected 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abcdef", 4, "abcdef"},
		{"·ab", 7, "  ·ab"},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.want)
		}
	}
}
