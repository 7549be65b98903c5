package engine

// Snapshot is an immutable point-in-time view of the game.
// Commands never modify a snapshot that has already been returned; they
// build a new one instead.
type Snapshot struct {
	Config        Configuration
	Board         Board
	Status        Status
	CellsRevealed int
	FlagsLeft     int
	TimeElapsed   int

	// PlayerIsRevealingCell is a transient UI hint (pointer held over a
	// covered cell). It has no effect on game logic.
	PlayerIsRevealingCell bool

	visited map[int]struct{}
}

// newSnapshot builds the initial state for a validated configuration.
func newSnapshot(cfg Configuration, rng Source) Snapshot {
	return Snapshot{
		Config:    cfg,
		Board:     Generate(cfg, rng),
		Status:    StatusReady,
		FlagsLeft: cfg.Mines,
		visited:   make(map[int]struct{}),
	}
}

// Cell returns the cell at index. Callers check Board.InBounds first.
func (s Snapshot) Cell(index int) Cell {
	return s.Board.Cell(index)
}

// Visited reports whether the flood fill has already processed index.
func (s Snapshot) Visited(index int) bool {
	_, ok := s.visited[index]
	return ok
}

// VisitedCount returns the number of indices processed by flood fill.
func (s Snapshot) VisitedCount() int {
	return len(s.visited)
}

// FlaggedCount returns the number of flagged cells.
func (s Snapshot) FlaggedCount() int {
	return s.Board.Count(func(c Cell) bool { return c.Flagged })
}

// RevealedCount returns the number of revealed cells.
func (s Snapshot) RevealedCount() int {
	return s.Board.Count(func(c Cell) bool { return c.Revealed })
}

// CoveredCount returns the number of cells that are neither revealed nor flagged.
func (s Snapshot) CoveredCount() int {
	return s.Board.Count(Cell.Covered)
}

// IsStarted reports whether the player has interacted and the game is running.
func (s Snapshot) IsStarted() bool {
	return s.Status == StatusPlaying
}

// IsOver reports whether the game reached a terminal status.
func (s Snapshot) IsOver() bool {
	return s.Status.Terminal()
}

// IsWon reports whether every safe cell has been revealed.
func (s Snapshot) IsWon() bool {
	return s.CellsRevealed == s.Config.SafeCells()
}

// Face is the mood indicator shown next to the flag counter.
type Face string

const (
	FaceOkay   Face = "okay"
	FaceScared Face = "scared"
	FaceWin    Face = "win"
	FaceLose   Face = "lose"
)

// Face derives the mood from status and the revealing hint.
func (s Snapshot) Face() Face {
	switch s.Status {
	case StatusWin:
		return FaceWin
	case StatusGameOver:
		return FaceLose
	case StatusReady, StatusPlaying:
		if s.PlayerIsRevealingCell {
			return FaceScared
		}
	}
	return FaceOkay
}

// cloneVisited returns a private copy of the visited set.
func (s Snapshot) cloneVisited() map[int]struct{} {
	out := make(map[int]struct{}, len(s.visited)+8)
	for k := range s.visited {
		out[k] = struct{}{}
	}
	return out
}
