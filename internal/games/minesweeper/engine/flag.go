package engine

// toggleFlag flips the flag on the cell at index under the shared flag budget.
// Flagging with an exhausted budget and flagging revealed cells are absorbed.
//
// index must be in bounds and the status must allow interaction.
func toggleFlag(s Snapshot, index int) (Snapshot, bool) {
	delta := 0
	switch s.Board.Cell(index).Kind() {
	case KindRevealedClear, KindRevealedMine:
		return s, false
	case KindFlagged:
		delta = 1
	case KindCoveredClear, KindCoveredMine:
		if s.FlagsLeft == 0 {
			return s, false
		}
		delta = -1
	}

	board := s.Board.clone()
	board.cells[index].Flagged = !board.cells[index].Flagged

	s.Board = board
	s.FlagsLeft += delta
	s.Status = s.Status.started()
	return s, true
}
