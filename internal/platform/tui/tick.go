// Package tui provides the Bubble Tea integration for the sweeper platform.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID identifies the tick loop so a loop left over from a previous game
// can be told apart from the current one.
type TickMsg struct {
	ID   int
	Time time.Time
}

var tickIDs atomic.Int64

func nextTickID() int {
	return int(tickIDs.Add(1))
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
