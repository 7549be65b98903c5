package engine

// Board is an immutable, fixed-length collection of cells addressed by
// index = row*width + col. Mutating operations in this package always work on
// a clone so that boards handed out in snapshots never change.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// neighbourOffsets lists the 8 surrounding (drow, dcol) offsets.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Generate builds a fresh board for cfg. Mines are placed by rejection
// sampling: a row and a column are drawn from rng and redrawn on collision.
// The configuration must already be valid.
func Generate(cfg Configuration, rng Source) Board {
	b := Board{
		width:  cfg.Width,
		height: cfg.Height,
		cells:  make([]Cell, cfg.Cells()),
	}

	placed := 0
	for placed < cfg.Mines {
		row := rng.IntN(cfg.Height)
		col := rng.IntN(cfg.Width)
		idx := b.Index(row, col)

		if b.cells[idx].Mine {
			continue
		}
		b.cells[idx].Mine = true
		placed++
	}

	for i := range b.cells {
		if b.cells[i].Mine {
			continue
		}
		count := 0
		for _, n := range b.Neighbours(i) {
			if b.cells[n].Mine {
				count++
			}
		}
		b.cells[i].AdjacentMines = count
	}

	return b
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b Board) Height() int {
	return b.height
}

// Len returns the number of cells.
func (b Board) Len() int {
	return len(b.cells)
}

// Index converts (row, col) to a cell index.
func (b Board) Index(row, col int) int {
	return row*b.width + col
}

// Coords converts a cell index to (row, col).
func (b Board) Coords(index int) (row, col int) {
	return index / b.width, index % b.width
}

// InBounds reports whether index addresses a cell.
func (b Board) InBounds(index int) bool {
	return index >= 0 && index < len(b.cells)
}

// Cell returns the cell at index. Callers check InBounds first.
func (b Board) Cell(index int) Cell {
	return b.cells[index]
}

// Cells returns a copy of all cells in index order.
func (b Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Neighbours returns the in-bounds indices surrounding index,
// clipped at the board edges.
func (b Board) Neighbours(index int) []int {
	row, col := b.Coords(index)
	result := make([]int, 0, len(neighbourOffsets))
	for _, d := range neighbourOffsets {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= b.height || c < 0 || c >= b.width {
			continue
		}
		result = append(result, b.Index(r, c))
	}
	return result
}

// MineIndices returns the indices of all mine cells in ascending order.
func (b Board) MineIndices() []int {
	var mines []int
	for i, c := range b.cells {
		if c.Mine {
			mines = append(mines, i)
		}
	}
	return mines
}

// Count returns how many cells satisfy the predicate.
func (b Board) Count(pred func(Cell) bool) int {
	n := 0
	for _, c := range b.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// clone returns a board with its own copy of the cell slice.
func (b Board) clone() Board {
	return Board{
		width:  b.width,
		height: b.height,
		cells:  b.Cells(),
	}
}

// exposeMines returns a copy of the board with every mine revealed and
// unflagged, plus the number of flags that were lifted off mines.
// Non-mine cells are left untouched.
func (b Board) exposeMines() (Board, int) {
	out := b.clone()
	lifted := 0
	for i, c := range out.cells {
		if !c.Mine {
			continue
		}
		switch c.Kind() {
		case KindFlagged:
			lifted++
			out.cells[i].Flagged = false
			out.cells[i].Revealed = true
		case KindCoveredMine:
			out.cells[i].Revealed = true
		case KindRevealedMine, KindCoveredClear, KindRevealedClear:
		}
	}
	return out, lifted
}
