package engine

// reveal uncovers the cell at index and returns the resulting state.
// The returned event is non-nil when the reveal ended the game, and applied
// is false when the command was absorbed as a no-op.
//
// index must be in bounds and the status must allow interaction.
func reveal(s Snapshot, index int) (next Snapshot, ev *Event, applied bool) {
	switch s.Board.Cell(index).Kind() {
	case KindRevealedClear, KindRevealedMine, KindFlagged:
		return s, nil, false

	case KindCoveredMine:
		return lose(s), &Event{Type: EventLose, Cause: CauseMine}, true

	case KindCoveredClear:
		next = floodFill(s, index)
		if next.CellsRevealed == next.Config.SafeCells() {
			next.Status = StatusWin
			return next, &Event{Type: EventWin, Cause: CauseCleared}, true
		}
		next.Status = StatusPlaying
		return next, nil, true
	}

	return s, nil, false
}

// floodFill reveals the connected region around index. Zero-count cells
// propagate to all neighbours; numbered cells are revealed but stop the
// spread. Flagged cells are never revealed.
func floodFill(s Snapshot, index int) Snapshot {
	board := s.Board.clone()
	visited := s.cloneVisited()
	stack := []int{index}
	revealed := 0

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := board.cells[idx]
		if cell.Flagged {
			continue
		}
		if _, seen := visited[idx]; seen {
			continue
		}
		visited[idx] = struct{}{}

		if !cell.Revealed {
			board.cells[idx].Revealed = true
			revealed++
		}

		if cell.AdjacentMines != 0 {
			continue
		}
		for _, n := range board.Neighbours(idx) {
			if _, seen := visited[n]; seen || board.cells[n].Flagged {
				continue
			}
			stack = append(stack, n)
		}
	}

	s.Board = board
	s.visited = visited
	s.CellsRevealed += revealed
	return s
}

// lose ends the game: every mine is exposed and flags lifted off mines go
// back to the budget.
func lose(s Snapshot) Snapshot {
	board, lifted := s.Board.exposeMines()
	s.Board = board
	s.FlagsLeft += lifted
	s.Status = StatusGameOver
	return s
}
