package engine

// Cell is a single square of the board.
// Mine and AdjacentMines are fixed at generation time.
type Cell struct {
	Mine          bool
	Revealed      bool
	Flagged       bool
	AdjacentMines int // 0-8, only meaningful for non-mine cells
}

// Kind is the tagged view over the reachable cell states.
type Kind int

const (
	KindCoveredClear Kind = iota
	KindCoveredMine
	KindFlagged
	KindRevealedClear
	KindRevealedMine
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCoveredClear:
		return "CoveredClear"
	case KindCoveredMine:
		return "CoveredMine"
	case KindFlagged:
		return "Flagged"
	case KindRevealedClear:
		return "RevealedClear"
	case KindRevealedMine:
		return "RevealedMine"
	default:
		return "Unknown"
	}
}

// Kind classifies the cell. Revealed wins over Flagged so that a corrupted
// cell never reports as both.
func (c Cell) Kind() Kind {
	switch {
	case c.Revealed && c.Mine:
		return KindRevealedMine
	case c.Revealed:
		return KindRevealedClear
	case c.Flagged:
		return KindFlagged
	case c.Mine:
		return KindCoveredMine
	default:
		return KindCoveredClear
	}
}

// Covered reports whether the cell is neither revealed nor flagged.
func (c Cell) Covered() bool {
	return !c.Revealed && !c.Flagged
}
