package engine

// EventType is the outcome signalled when a game ends.
type EventType int

const (
	EventWin EventType = iota
	EventLose
)

// String returns "win" or "lose".
func (t EventType) String() string {
	switch t {
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Cause explains why a game ended.
type Cause int

const (
	CauseCleared Cause = iota // All safe cells revealed
	CauseMine                 // A mine was revealed
	CauseTimeout              // Time limit reached
)

// String returns the message shown to the player.
func (c Cause) String() string {
	switch c {
	case CauseCleared:
		return "You cleared all of the mines."
	case CauseMine:
		return "You hit a mine."
	case CauseTimeout:
		return "You ran out of time."
	default:
		return "Game over."
	}
}

// Event is emitted exactly once per game, when it enters a terminal status.
type Event struct {
	Type  EventType
	Cause Cause
	State Snapshot // State right after the transition
}

// Listener receives events synchronously, on the goroutine issuing the command.
type Listener func(Event)

// notifier fans events out to subscribed listeners.
type notifier struct {
	nextID    int
	listeners map[int]Listener
	order     []int
}

func (n *notifier) subscribe(l Listener) func() {
	if n.listeners == nil {
		n.listeners = make(map[int]Listener)
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = l
	n.order = append(n.order, id)

	return func() {
		if _, ok := n.listeners[id]; !ok {
			return
		}
		delete(n.listeners, id)
		for i, v := range n.order {
			if v == id {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
}

// publish delivers events in subscription order. The listener list is copied
// first so a listener may unsubscribe itself.
func (n *notifier) publish(events []Event) {
	if len(events) == 0 || len(n.order) == 0 {
		return
	}
	ids := append([]int(nil), n.order...)
	for _, ev := range events {
		for _, id := range ids {
			if l, ok := n.listeners[id]; ok {
				l(ev)
			}
		}
	}
}
