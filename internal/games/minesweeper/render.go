package minesweeper

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/engine"
)

const (
	cellWidth = 2  // Glyph plus gap
	hudHeight = 2  // Title line and counters line
	minHUDW   = 32 // Room for the longest cause message
)

// style holds the glyphs and colors used to draw cells.
type style struct {
	covered rune
	flag    rune
	mine    rune
	numbers [9]core.Color // Indexed by adjacent mine count
}

func newStyle(d config.Display) style {
	s := style{
		covered: config.Glyph(d.Covered, '·'),
		flag:    config.Glyph(d.Flag, 'F'),
		mine:    config.Glyph(d.Mine, '*'),
	}
	for i, name := range d.NumberColors {
		if i+1 < len(s.numbers) {
			s.numbers[i+1] = core.ParseColor(name)
		}
	}
	return s
}

// layout places the HUD and grid on the screen.
type layout struct {
	fits    bool
	hud     core.Rect // Title and counters
	box     core.Rect // Border around the grid
	grid    core.Rect // Pointer hit area, cellWidth columns per cell
	footerY int       // -1 when there is no room for the hint line
	cols    int
}

func computeLayout(board engine.Configuration, w, h int) layout {
	boxW := board.Width*cellWidth + 3
	boxH := board.Height + 2
	hudW := max(boxW, minHUDW)

	l := layout{
		fits:    w >= hudW && h >= boxH+hudHeight,
		cols:    board.Width,
		footerY: -1,
	}

	totalH := boxH + hudHeight
	if h > totalH {
		totalH++
	}
	screen := core.NewRect(0, 0, w, h)
	top := max(screen.Centered(hudW, totalH).Y, 0)

	l.hud = core.NewRect(screen.Centered(hudW, totalH).X, top, hudW, hudHeight)
	l.box = core.NewRect(screen.Centered(boxW, boxH).X, top+hudHeight, boxW, boxH)
	l.grid = core.NewRect(l.box.X+1, l.box.Y+1, board.Width*cellWidth, board.Height)
	if l.box.Bottom() < h {
		l.footerY = l.box.Bottom()
	}
	return l
}

// cellAt returns the cell index under a screen position.
func (l layout) cellAt(x, y int) (int, bool) {
	if !l.grid.Contains(x, y) {
		return -1, false
	}
	col := (x - l.grid.X) / cellWidth
	row := y - l.grid.Y
	return row*l.cols + col, true
}

// cellPos returns the screen position of a cell's glyph.
func (l layout) cellPos(row, col int) (int, int) {
	return l.grid.X + 1 + col*cellWidth, l.grid.Y + row
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	s := g.eng.Snapshot()
	g.renderHUD(dst, s)
	g.renderBoard(dst, s)
	g.renderFooter(dst, s)

	if g.paused {
		g.drawOverlay(dst, "PAUSED", "P: resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", max(g.board.Width*cellWidth+3, minHUDW), g.board.Height+2+hudHeight))
}

// renderHUD draws the title or outcome line and the flags/face/time counters.
func (g *Game) renderHUD(dst *core.Screen, s engine.Snapshot) {
	hud := g.layout.hud

	switch {
	case g.lastEvent != nil && g.lastEvent.Type == engine.EventWin:
		drawCentered(dst, hud, hud.Y, g.lastEvent.Cause.String(), core.ColorBrightGreen)
	case g.lastEvent != nil:
		drawCentered(dst, hud, hud.Y, g.lastEvent.Cause.String(), core.ColorBrightRed)
	default:
		drawCentered(dst, hud, hud.Y, g.title, core.ColorBrightWhite)
	}

	y := hud.Y + 1
	flags := fmt.Sprintf("%c %02d", g.style.flag, s.FlagsLeft)
	dst.DrawTextColor(hud.X, y, flags, core.ColorBrightRed)

	drawCentered(dst, hud, y, faceText(s.Face()), core.ColorBrightYellow)

	clock := fmt.Sprintf("%03d", s.TimeElapsed)
	if s.Config.HasTimeLimit() {
		clock += "/" + strconv.Itoa(s.Config.TimeLimit)
	}
	dst.DrawTextColor(hud.Right()-utf8.RuneCountInString(clock), y, clock, core.ColorBrightRed)
}

// renderBoard draws the border, every cell and the cursor.
func (g *Game) renderBoard(dst *core.Screen, s engine.Snapshot) {
	dst.DrawBox(g.layout.box, core.ColorGray)

	for row := range g.board.Height {
		for col := range g.board.Width {
			x, y := g.layout.cellPos(row, col)
			r, c := g.cellGlyph(s, s.Cell(row*g.board.Width+col))
			dst.SetColor(x, y, r, c)
		}
	}

	if !s.IsOver() {
		x, y := g.layout.cellPos(g.cursorRow, g.cursorCol)
		dst.SetColor(x-1, y, '[', core.ColorBrightYellow)
		dst.SetColor(x+1, y, ']', core.ColorBrightYellow)
	}
}

// cellGlyph picks the rune and color for a cell.
func (g *Game) cellGlyph(s engine.Snapshot, cell engine.Cell) (rune, core.Color) {
	switch cell.Kind() {
	case engine.KindFlagged:
		if s.Status == engine.StatusGameOver && !cell.Mine {
			return 'x', core.ColorOrange // Wrong flag
		}
		return g.style.flag, core.ColorBrightRed
	case engine.KindRevealedMine:
		return g.style.mine, core.ColorBrightRed
	case engine.KindRevealedClear:
		if cell.AdjacentMines == 0 {
			return ' ', core.ColorDefault
		}
		return rune('0' + cell.AdjacentMines), g.style.numbers[cell.AdjacentMines]
	default:
		return g.style.covered, core.ColorGray
	}
}

// renderFooter draws the control hints below the board when there is room.
func (g *Game) renderFooter(dst *core.Screen, s engine.Snapshot) {
	if g.layout.footerY < 0 {
		return
	}
	hint := g.Controls()
	if s.IsOver() {
		hint = "R: New game | Q: Quit"
	}
	dst.DrawTextCenteredColor(g.layout.footerY, hint, core.ColorGray)
}

// drawOverlay draws a boxed message centered on the grid.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := g.layout.box.Centered(maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		drawCentered(dst, box, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// drawCentered writes text centered horizontally inside r.
func drawCentered(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-utf8.RuneCountInString(text))/2
	dst.DrawTextColor(x, y, text, c)
}

func faceText(f engine.Face) string {
	switch f {
	case engine.FaceScared:
		return ":O"
	case engine.FaceWin:
		return "B)"
	case engine.FaceLose:
		return "X("
	default:
		return ":)"
	}
}
