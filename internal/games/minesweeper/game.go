// Package minesweeper adapts the minesweeper engine to the platform's game
// interface: cursor and pointer input, frame-to-second clock conversion and
// rendering into a character screen.
package minesweeper

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/engine"
)

// Game implements registry.Game for one board preset.
type Game struct {
	id    string
	title string

	eng    *engine.Engine
	board  engine.Configuration
	style  style
	logger *log.Logger

	cursorRow int
	cursorCol int
	pressed   int // Cell under a held primary button, -1 when none

	screenW  int
	screenH  int
	layout   layout
	tickRate int
	frames   int // Frames since the last clock tick

	paused    bool
	tooSmall  bool
	lastEvent *engine.Event
}

// New creates a game for the given preset ID (or CustomID).
// The board is built by Reset.
func New(id string) *Game {
	_, title, err := boardFor(id)
	if err != nil {
		title = id
	}
	return &Game{
		id:      id,
		title:   "Minesweeper: " + title,
		pressed: -1,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh board for the preset and screen size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.logger = currentLogger().With("game", g.id)

	board, _, err := boardFor(g.id)
	if err != nil {
		g.logger.Error("unknown board, falling back to default", "error", err)
		def := config.DefaultMinesweeperConfig()
		board = def.Board(def.Presets[0])
	}

	eng, err := engine.New(board, engine.WithSeed(cfg.Seed), engine.WithLogger(g.logger))
	if err != nil {
		// Presets and the custom board are validated when they are set.
		g.logger.Error("cannot create engine", "config", board.String(), "error", err)
		def := config.DefaultMinesweeperConfig()
		board = def.Board(def.Presets[0])
		eng, _ = engine.New(board, engine.WithSeed(cfg.Seed), engine.WithLogger(g.logger))
	}

	g.eng = eng
	g.board = board
	g.eng.Subscribe(g.onEvent)
	g.style = newStyle(Settings().Display)

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.paused = false
	g.newRound()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(g.board, w, h)
	g.tooSmall = !g.layout.fits
}

// newRound clears per-round adapter state and centers the cursor.
func (g *Game) newRound() {
	g.frames = 0
	g.lastEvent = nil
	g.pressed = -1
	g.cursorRow = g.board.Height / 2
	g.cursorCol = g.board.Width / 2
}

func (g *Game) onEvent(ev engine.Event) {
	g.lastEvent = &ev
	g.logger.Debug("round finished", "result", ev.Type, "cause", ev.Cause)
}

// Step applies one frame of input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	snap := g.eng.Snapshot()

	if in.Has(core.ActionPause) && !snap.IsOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.eng.Restart()
		g.newRound()
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionReveal) {
		g.reveal(g.cursorIndex())
	}
	if in.Has(core.ActionFlag) {
		g.toggleFlag(g.cursorIndex())
	}
	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}

	g.advanceClock()

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.cursorRow--
	}
	if in.Has(core.ActionDown) {
		g.cursorRow++
	}
	if in.Has(core.ActionLeft) {
		g.cursorCol--
	}
	if in.Has(core.ActionRight) {
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, g.board.Height-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, g.board.Width-1)
}

// handlePointer maps mouse events onto cells. A primary press over a covered
// cell raises the revealing hint and the release reveals the cell under the
// pointer. A secondary press toggles a flag.
func (g *Game) handlePointer(ev core.PointerEvent) {
	idx, onBoard := g.layout.cellAt(ev.X, ev.Y)
	if onBoard {
		g.cursorRow, g.cursorCol = idx/g.board.Width, idx%g.board.Width
	}

	switch {
	case ev.Kind == core.PointerPress && ev.Button == core.ButtonPrimary:
		if onBoard && g.eng.Snapshot().Cell(idx).Covered() {
			g.pressed = idx
			g.eng.SetIsPlayerRevealing(true)
		}

	case ev.Kind == core.PointerRelease:
		if g.pressed < 0 {
			return
		}
		g.pressed = -1
		g.eng.SetIsPlayerRevealing(false)
		if onBoard {
			g.reveal(idx)
		}

	case ev.Kind == core.PointerPress && ev.Button == core.ButtonSecondary:
		if onBoard {
			g.toggleFlag(idx)
		}
	}
}

func (g *Game) reveal(idx int) {
	if _, err := g.eng.RevealCell(idx); err != nil {
		g.logger.Error("reveal failed", "index", idx, "error", err)
	}
}

func (g *Game) toggleFlag(idx int) {
	if _, err := g.eng.ToggleFlag(idx); err != nil {
		g.logger.Error("flag failed", "index", idx, "error", err)
	}
}

// advanceClock ticks the engine once per second of frames while a round runs.
func (g *Game) advanceClock() {
	if !g.eng.Snapshot().IsStarted() {
		g.frames = 0
		return
	}
	g.frames++
	if g.frames >= g.tickRate {
		g.frames = 0
		g.eng.Tick()
	}
}

func (g *Game) cursorIndex() int {
	return g.cursorRow*g.board.Width + g.cursorCol
}

// Cursor returns the cursor position as (row, col).
func (g *Game) Cursor() (int, int) {
	return g.cursorRow, g.cursorCol
}

// Snapshot returns the current engine state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// LastEvent returns the event that ended the current round, or nil.
func (g *Game) LastEvent() *engine.Event {
	return g.lastEvent
}

// Summary describes the board and how the round ended.
func (g *Game) Summary() core.RoundSummary {
	sum := core.RoundSummary{
		Width:  g.board.Width,
		Height: g.board.Height,
		Mines:  g.board.Mines,
	}
	if g.lastEvent != nil {
		sum.Cause = g.lastEvent.Cause.String()
	}
	return sum
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	s := g.eng.Snapshot()
	return core.GameState{
		Score:    s.CellsRevealed,
		Elapsed:  s.TimeElapsed,
		GameOver: s.IsOver(),
		Won:      s.Status == engine.StatusWin,
		Paused:   g.paused,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Reveal | F: Flag | R: New | P: Pause | Q: Quit"
}
