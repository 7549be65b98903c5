package engine

// tick advances the clock by one unit. The clock only runs while playing;
// the caller drives the cadence.
func tick(s Snapshot) (next Snapshot, ev *Event, applied bool) {
	if s.Status != StatusPlaying {
		return s, nil, false
	}

	s.TimeElapsed++
	if s.Config.HasTimeLimit() && s.TimeElapsed >= s.Config.TimeLimit {
		return lose(s), &Event{Type: EventLose, Cause: CauseTimeout}, true
	}
	return s, nil, true
}
