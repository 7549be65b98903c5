package engine

// Status is the game status state machine:
//
//	ready -> playing -> win | game-over
//
// Only Initialize leaves a terminal status.
type Status int

const (
	StatusReady Status = iota
	StatusPlaying
	StatusWin
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusWin:
		return "win"
	case StatusGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool {
	return s == StatusWin || s == StatusGameOver
}

// CanInteract reports whether mutating commands are accepted.
func (s Status) CanInteract() bool {
	return !s.Terminal()
}

// started moves ready to playing and leaves any other status alone.
func (s Status) started() Status {
	if s == StatusReady {
		return StatusPlaying
	}
	return s
}
