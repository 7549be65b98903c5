// Package engine implements the minesweeper rules: configuration validation,
// mine placement, flood-fill reveals, the flag budget, the status state
// machine and the game clock.
//
// The engine is synchronous and single-threaded. Every command runs to
// completion and yields a new immutable Snapshot; previously returned
// snapshots are never modified, so readers can hold on to them freely.
// Disallowed player actions (revealing a flagged cell, flagging past the
// budget, anything after the game ended) are absorbed as no-ops rather than
// reported as errors.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrIndexOutOfRange is returned when a command addresses a cell that does
// not exist. It indicates a caller bug, not a player mistake.
var ErrIndexOutOfRange = errors.New("engine: cell index out of range")

// Result is returned by every command.
type Result struct {
	State   Snapshot
	Events  []Event // Outbox of events produced by this command
	Applied bool    // False when the command was absorbed as a no-op
}

// Engine owns the authoritative game state.
type Engine struct {
	state    Snapshot
	rng      Source
	logger   *log.Logger
	notifier notifier
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used for mine placement.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithSeed seeds a PCG source for reproducible boards.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = NewSource(seed)
	}
}

// WithLogger sets the logger for guard rejections and game outcomes.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine and initializes the first board from cfg.
func New(cfg Configuration, opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewSource(0)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	if _, err := e.Initialize(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize replaces the whole game state with a fresh board for cfg.
// An invalid configuration leaves the current state untouched.
func (e *Engine) Initialize(cfg Configuration) (Result, error) {
	if err := cfg.Validate(); err != nil {
		e.logger.Warn("rejected configuration", "config", cfg.String(), "error", err)
		return e.unchanged(), err
	}

	e.state = newSnapshot(cfg, e.rng)
	e.logger.Debug("board generated", "config", cfg.String(), "time_limit", cfg.TimeLimit)
	return Result{State: e.state, Applied: true}, nil
}

// Restart starts a new game with the active configuration.
func (e *Engine) Restart() Result {
	e.state = newSnapshot(e.state.Config, e.rng)
	e.logger.Debug("board regenerated", "config", e.state.Config.String())
	return Result{State: e.state, Applied: true}
}

// RevealCell uncovers the cell at index.
func (e *Engine) RevealCell(index int) (Result, error) {
	if err := e.checkIndex(index); err != nil {
		return e.unchanged(), err
	}
	if !e.guard("revealCell") {
		return e.unchanged(), nil
	}

	next, ev, applied := reveal(e.state, index)
	return e.commit("revealCell", next, ev, applied), nil
}

// ToggleFlag flags or unflags the cell at index.
func (e *Engine) ToggleFlag(index int) (Result, error) {
	if err := e.checkIndex(index); err != nil {
		return e.unchanged(), err
	}
	if !e.guard("toggleFlag") {
		return e.unchanged(), nil
	}

	next, applied := toggleFlag(e.state, index)
	return e.commit("toggleFlag", next, nil, applied), nil
}

// SetIsPlayerRevealing updates the "considering" hint.
func (e *Engine) SetIsPlayerRevealing(to bool) Result {
	if !e.guard("setIsPlayerRevealing") {
		return e.unchanged()
	}

	next := e.state
	next.PlayerIsRevealingCell = to
	return e.commit("setIsPlayerRevealing", next, nil, e.state.PlayerIsRevealingCell != to)
}

// Tick advances the clock by one unit.
func (e *Engine) Tick() Result {
	if !e.guard("tick") {
		return e.unchanged()
	}

	next, ev, applied := tick(e.state)
	return e.commit("tick", next, ev, applied)
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	return e.state
}

// Config returns the active configuration.
func (e *Engine) Config() Configuration {
	return e.state.Config
}

// Subscribe registers a listener for win/lose events and returns a function
// that removes it.
func (e *Engine) Subscribe(l Listener) (unsubscribe func()) {
	return e.notifier.subscribe(l)
}

// guard rejects mutating commands once the game is over.
func (e *Engine) guard(command string) bool {
	if e.state.Status.CanInteract() {
		return true
	}
	e.logger.Debug("guard stopped command", "command", command, "status", e.state.Status)
	return false
}

func (e *Engine) checkIndex(index int) error {
	if !e.state.Board.InBounds(index) {
		e.logger.Error("cell index out of range", "index", index, "cells", e.state.Board.Len())
		return fmt.Errorf("%w: %d (board has %d cells)", ErrIndexOutOfRange, index, e.state.Board.Len())
	}
	return nil
}

func (e *Engine) unchanged() Result {
	return Result{State: e.state}
}

// commit installs next as the current state and publishes the event, if any.
func (e *Engine) commit(command string, next Snapshot, ev *Event, applied bool) Result {
	if !applied {
		e.logger.Debug("command had no effect", "command", command)
		return e.unchanged()
	}

	e.state = next
	res := Result{State: next, Applied: true}

	if ev != nil {
		ev.State = next
		res.Events = []Event{*ev}
		e.logger.Info("game over",
			"result", ev.Type,
			"cause", ev.Cause,
			"revealed", next.CellsRevealed,
			"elapsed", next.TimeElapsed,
		)
		e.notifier.publish(res.Events)
	}

	return res
}
