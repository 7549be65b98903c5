package minesweeper

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

const testTickRate = 10

func newTestGame(t *testing.T, id string) *Game {
	t.Helper()
	g := New(id)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: testTickRate, Seed: 42})
	if g.tooSmall {
		t.Fatal("80x30 screen should fit the board")
	}
	return g
}

// restoreSettings undoes package-level configuration changes after a test.
func restoreSettings(t *testing.T) {
	t.Helper()
	prevSettings := Settings()
	prevCustom := CustomConfiguration()
	t.Cleanup(func() {
		settingsMu.Lock()
		settings = prevSettings
		customBoard = prevCustom
		settingsMu.Unlock()
	})
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func pointer(g *Game, idx int, kind core.PointerKind, button core.PointerButton) core.StepResult {
	x, y := g.layout.cellPos(idx/g.board.Width, idx%g.board.Width)
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{X: x, Y: y, Kind: kind, Button: button})
	return g.Step(in)
}

func click(g *Game, idx int) core.StepResult {
	pointer(g, idx, core.PointerPress, core.ButtonPrimary)
	return pointer(g, idx, core.PointerRelease, core.ButtonPrimary)
}

// findCell returns the first index whose cell satisfies pred.
func findCell(t *testing.T, s engine.Snapshot, pred func(engine.Cell) bool) int {
	t.Helper()
	for i := range s.Board.Len() {
		if pred(s.Cell(i)) {
			return i
		}
	}
	t.Fatal("no matching cell")
	return -1
}

func isSafe(c engine.Cell) bool { return !c.Mine && !c.Revealed }
func isMine(c engine.Cell) bool { return c.Mine }

func TestRegisteredPresets(t *testing.T) {
	for _, id := range []string{"beginner", "intermediate", "advanced", CustomID} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}

	g, err := registry.Create("intermediate")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Minesweeper: Intermediate" {
		t.Errorf("Title() = %q", g.Title())
	}

	want := []string{"beginner", "intermediate", "advanced", CustomID}
	if got := IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, expected %v", got, want)
	}

	board, err := Board("advanced")
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	if board.String() != "20x20/50" {
		t.Errorf("Board(advanced) = %s, expected 20x20/50", board)
	}
	if _, err := Board("missing"); !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestResetUsesPreset(t *testing.T) {
	tests := []struct {
		id   string
		want engine.Configuration
	}{
		{"beginner", engine.Configuration{Width: 5, Height: 5, Mines: 5, TimeLimit: 999}},
		{"intermediate", engine.Configuration{Width: 15, Height: 15, Mines: 30, TimeLimit: 999}},
		{"advanced", engine.Configuration{Width: 20, Height: 20, Mines: 50, TimeLimit: 999}},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g := New(tc.id)
			g.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 1})
			s := g.Snapshot()

			if s.Config != tc.want {
				t.Errorf("Config = %+v, expected %+v", s.Config, tc.want)
			}
			if s.Status != engine.StatusReady {
				t.Errorf("Status = %v, expected ready", s.Status)
			}
			st := g.State()
			if st.GameOver || st.Won || st.Paused || st.Score != 0 || st.Elapsed != 0 {
				t.Errorf("unexpected initial state %+v", st)
			}
		})
	}
}

func TestSameSeedSameBoard(t *testing.T) {
	a := newTestGame(t, "intermediate")
	b := newTestGame(t, "intermediate")

	got, want := a.Snapshot().Board.MineIndices(), b.Snapshot().Board.MineIndices()
	if !slices.Equal(got, want) {
		t.Errorf("same seed produced different boards: %v vs %v", got, want)
	}
}

func TestCursorMovementClamps(t *testing.T) {
	g := newTestGame(t, "beginner")

	if row, col := g.Cursor(); row != 2 || col != 2 {
		t.Fatalf("cursor starts at (%d, %d), expected (2, 2)", row, col)
	}

	for range 10 {
		step(g, core.ActionUp, core.ActionLeft)
	}
	if row, col := g.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor = (%d, %d), expected (0, 0)", row, col)
	}

	for range 10 {
		step(g, core.ActionDown, core.ActionRight)
	}
	if row, col := g.Cursor(); row != 4 || col != 4 {
		t.Errorf("cursor = (%d, %d), expected (4, 4)", row, col)
	}
}

func TestKeyboardRevealAndFlag(t *testing.T) {
	g := newTestGame(t, "intermediate")
	safe := findCell(t, g.Snapshot(), isSafe)

	// Point the cursor at a safe cell via hover, then use keys.
	pointer(g, safe, core.PointerMotion, core.ButtonNone)
	if row, col := g.Cursor(); row*15+col != safe {
		t.Fatalf("hover should move the cursor to %d, got (%d, %d)", safe, row, col)
	}

	res := step(g, core.ActionReveal)
	if !g.Snapshot().Cell(safe).Revealed {
		t.Error("ActionReveal should reveal the cell under the cursor")
	}
	if res.State.Score == 0 {
		t.Error("Score should count revealed cells")
	}

	covered := findCell(t, g.Snapshot(), engine.Cell.Covered)
	pointer(g, covered, core.PointerMotion, core.ButtonNone)
	step(g, core.ActionFlag)
	if !g.Snapshot().Cell(covered).Flagged {
		t.Error("ActionFlag should flag the cell under the cursor")
	}
	if g.Snapshot().FlagsLeft != 29 {
		t.Errorf("FlagsLeft = %d, expected 29", g.Snapshot().FlagsLeft)
	}
}

func TestPointerPressSetsRevealingHint(t *testing.T) {
	g := newTestGame(t, "intermediate")
	safe := findCell(t, g.Snapshot(), isSafe)

	pointer(g, safe, core.PointerPress, core.ButtonPrimary)
	s := g.Snapshot()
	if !s.PlayerIsRevealingCell || s.Face() != engine.FaceScared {
		t.Error("primary press should raise the revealing hint")
	}
	if s.Cell(safe).Revealed {
		t.Error("press alone must not reveal")
	}

	pointer(g, safe, core.PointerRelease, core.ButtonPrimary)
	s = g.Snapshot()
	if s.PlayerIsRevealingCell {
		t.Error("release should clear the revealing hint")
	}
	if !s.Cell(safe).Revealed {
		t.Error("release should reveal the cell")
	}
}

func TestPointerReleaseOffBoard(t *testing.T) {
	g := newTestGame(t, "beginner")
	safe := findCell(t, g.Snapshot(), isSafe)

	pointer(g, safe, core.PointerPress, core.ButtonPrimary)

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{X: 0, Y: 0, Kind: core.PointerRelease, Button: core.ButtonPrimary})
	g.Step(in)

	s := g.Snapshot()
	if s.PlayerIsRevealingCell {
		t.Error("release off the board should clear the hint")
	}
	if s.RevealedCount() != 0 {
		t.Error("release off the board must not reveal anything")
	}
}

func TestPointerSecondaryFlags(t *testing.T) {
	g := newTestGame(t, "beginner")

	pointer(g, 0, core.PointerPress, core.ButtonSecondary)
	if !g.Snapshot().Cell(0).Flagged {
		t.Fatal("secondary press should flag")
	}
	pointer(g, 0, core.PointerPress, core.ButtonSecondary)
	if g.Snapshot().Cell(0).Flagged {
		t.Error("second secondary press should unflag")
	}
}

func TestClockTicksOncePerSecond(t *testing.T) {
	g := newTestGame(t, "intermediate")

	// The clock waits for the first interaction.
	for range testTickRate * 3 {
		step(g)
	}
	if g.State().Elapsed != 0 {
		t.Fatalf("Elapsed = %d before the first move, expected 0", g.State().Elapsed)
	}

	pointer(g, 0, core.PointerPress, core.ButtonSecondary) // Flag starts the round
	for range testTickRate*2 - 1 {
		step(g)
	}
	if got := g.State().Elapsed; got != 2 {
		t.Errorf("Elapsed = %d after %d frames, expected 2", got, testTickRate*2)
	}
}

func TestPauseFreezesInputAndClock(t *testing.T) {
	g := newTestGame(t, "beginner")
	pointer(g, 0, core.PointerPress, core.ButtonSecondary)

	if !step(g, core.ActionPause).State.Paused {
		t.Fatal("ActionPause should pause")
	}
	for range testTickRate * 3 {
		step(g, core.ActionFlag)
	}
	if g.State().Elapsed != 0 {
		t.Error("clock should not run while paused")
	}
	if g.Snapshot().FlaggedCount() != 1 {
		t.Error("input should be ignored while paused")
	}

	if step(g, core.ActionPause).State.Paused {
		t.Error("second ActionPause should resume")
	}
}

func TestLoseRound(t *testing.T) {
	g := newTestGame(t, "beginner")
	mine := findCell(t, g.Snapshot(), isMine)

	res := click(g, mine)
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("expected a lost game, got %+v", res.State)
	}
	ev := g.LastEvent()
	if ev == nil || ev.Type != engine.EventLose || ev.Cause != engine.CauseMine {
		t.Fatalf("LastEvent() = %+v, expected lose/mine", ev)
	}

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "You hit a mine.") {
		t.Error("render should show the cause of the loss")
	}
	if !strings.Contains(screen.String(), "X(") {
		t.Error("render should show the losing face")
	}

	sum := g.Summary()
	want := core.RoundSummary{Cause: "You hit a mine.", Width: 5, Height: 5, Mines: 5}
	if sum != want {
		t.Errorf("Summary() = %+v, expected %+v", sum, want)
	}
}

func TestWinRound(t *testing.T) {
	g := newTestGame(t, "beginner")

	for !g.Snapshot().IsOver() {
		click(g, findCell(t, g.Snapshot(), isSafe))
	}

	st := g.State()
	if !st.GameOver || !st.Won {
		t.Fatalf("expected a won game, got %+v", st)
	}
	if st.Score != 20 {
		t.Errorf("Score = %d, expected 20", st.Score)
	}
	if ev := g.LastEvent(); ev == nil || ev.Cause != engine.CauseCleared {
		t.Errorf("LastEvent() = %+v, expected cleared", ev)
	}

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "You cleared all of the mines.") {
		t.Error("render should show the win message")
	}
}

func TestRestartStartsNewRound(t *testing.T) {
	g := newTestGame(t, "beginner")
	click(g, findCell(t, g.Snapshot(), isMine))

	res := step(g, core.ActionRestart)
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("restart should start a fresh round, got %+v", res.State)
	}
	if g.LastEvent() != nil {
		t.Error("restart should clear the last event")
	}
	if g.Summary().Cause != "" {
		t.Errorf("Summary().Cause = %q after restart, expected empty", g.Summary().Cause)
	}
	if g.Snapshot().Config != (engine.Configuration{Width: 5, Height: 5, Mines: 5, TimeLimit: 999}) {
		t.Errorf("restart should keep the preset, got %+v", g.Snapshot().Config)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New("advanced")
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 30, Seed: 1})

	if !g.tooSmall {
		t.Fatal("30x10 should be too small for the advanced board")
	}
	if step(g, core.ActionReveal).State.Score != 0 {
		t.Error("input should be ignored while the window is too small")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("render should explain the window is too small")
	}

	// Growing the window keeps the board.
	before := g.Snapshot().Board.MineIndices()
	g.Resize(120, 40)
	if g.tooSmall {
		t.Error("120x40 should fit")
	}
	if after := g.Snapshot().Board.MineIndices(); !slices.Equal(before, after) {
		t.Error("Resize must not rebuild the board")
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, "beginner")
	pointer(g, 0, core.PointerPress, core.ButtonSecondary)

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Minesweeper: Beginner") {
		t.Error("HUD should show the title")
	}
	if !strings.Contains(out, "⚑ 04") {
		t.Error("HUD should show the flags left")
	}
	if !strings.Contains(out, "/999") {
		t.Error("HUD should show the time limit")
	}

	x, y := g.layout.cellPos(0, 0)
	if cell := screen.GetCell(x, y); cell.Rune != '⚑' || cell.Color != core.ColorBrightRed {
		t.Errorf("flagged cell drawn as %+v", cell)
	}
	x, y = g.layout.cellPos(4, 4)
	if cell := screen.GetCell(x, y); cell.Rune != '·' {
		t.Errorf("covered cell drawn as %+v", cell)
	}

	// Cursor brackets around (0, 0) after the pointer moved it there.
	x, y = g.layout.cellPos(0, 0)
	if screen.Get(x-1, y) != '[' || screen.Get(x+1, y) != ']' {
		t.Error("cursor should be drawn around the current cell")
	}
}

func TestRenderNumbersColored(t *testing.T) {
	g := newTestGame(t, "intermediate")
	s := g.Snapshot()
	idx := findCell(t, s, func(c engine.Cell) bool { return !c.Mine && c.AdjacentMines == 1 })

	click(g, idx)

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	x, y := g.layout.cellPos(idx/15, idx%15)
	if cell := screen.GetCell(x, y); cell.Rune != '1' || cell.Color != core.ColorBrightBlue {
		t.Errorf("count 1 drawn as %+v, expected bright blue '1'", cell)
	}
}

func TestConfigureTimeLimitRule(t *testing.T) {
	restoreSettings(t)

	cfg := config.DefaultMinesweeperConfig()
	cfg.Rules.TimeLimitEnabled = false
	if err := Configure(cfg); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}

	g := newTestGame(t, "beginner")
	if g.Snapshot().Config.HasTimeLimit() {
		t.Error("time limit should be off when the rule is disabled")
	}
}

func TestConfigureRegistersNewPresets(t *testing.T) {
	restoreSettings(t)

	cfg := config.DefaultMinesweeperConfig()
	cfg.Presets = append(cfg.Presets, config.Preset{
		ID:            "test-expert",
		Title:         "Expert",
		Configuration: engine.Configuration{Width: 30, Height: 16, Mines: 99},
	})
	if err := Configure(cfg); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	if !registry.Exists("test-expert") {
		t.Fatal("new preset should be registered")
	}

	g := New("test-expert")
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 3})
	if g.Snapshot().Config.Mines != 99 {
		t.Errorf("Mines = %d, expected 99", g.Snapshot().Config.Mines)
	}
}

func TestConfigureRejectsReservedID(t *testing.T) {
	restoreSettings(t)

	cfg := config.DefaultMinesweeperConfig()
	cfg.Presets[0].ID = CustomID
	cfg.Rules.DefaultPreset = CustomID
	if err := Configure(cfg); err == nil {
		t.Error("Configure() should reject a preset named custom")
	}
}

func TestCustomConfiguration(t *testing.T) {
	restoreSettings(t)

	err := SetCustomConfiguration(engine.Configuration{Width: 4, Height: 4, Mines: 16})
	if !errors.Is(err, engine.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}

	want := engine.Configuration{Width: 12, Height: 8, Mines: 20}
	if err := SetCustomConfiguration(want); err != nil {
		t.Fatalf("SetCustomConfiguration() failed: %v", err)
	}

	g := newTestGame(t, CustomID)
	if g.Snapshot().Config != want {
		t.Errorf("Config = %+v, expected %+v", g.Snapshot().Config, want)
	}
	if g.Title() != "Minesweeper: Custom" {
		t.Errorf("Title() = %q", g.Title())
	}
}
