package minesweeper

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// CustomID is the registry ID of the user-sized board.
const CustomID = "custom"

var (
	_ registry.Game       = (*Game)(nil)
	_ registry.Resizer    = (*Game)(nil)
	_ registry.Summarizer = (*Game)(nil)
)

// Package-level settings shared by every Game instance. The platform sets
// them once at startup; SSH sessions read them concurrently.
var (
	settingsMu  sync.RWMutex
	settings    = config.DefaultMinesweeperConfig()
	customBoard = engine.Configuration{Width: 9, Height: 9, Mines: 10}
	logger      = log.New(io.Discard)
)

func init() {
	for _, p := range settings.Presets {
		registerPreset(p.ID)
	}
	registry.Register(CustomID, func() registry.Game {
		return New(CustomID)
	})
}

func registerPreset(id string) {
	registry.Register(id, func() registry.Game {
		return New(id)
	})
}

// Configure installs a loaded configuration. Presets that are not registered
// yet become playable under their own ID.
func Configure(cfg config.MinesweeperConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, ok := cfg.Preset(CustomID); ok {
		return fmt.Errorf("minesweeper: preset id %q is reserved", CustomID)
	}

	settingsMu.Lock()
	settings = cfg
	settingsMu.Unlock()

	for _, p := range cfg.Presets {
		if !registry.Exists(p.ID) {
			registerPreset(p.ID)
		}
	}
	return nil
}

// Settings returns the active configuration.
func Settings() config.MinesweeperConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// SetCustomConfiguration sets the board used by the custom game.
func SetCustomConfiguration(c engine.Configuration) error {
	if err := c.Validate(); err != nil {
		return err
	}
	settingsMu.Lock()
	customBoard = c
	settingsMu.Unlock()
	return nil
}

// CustomConfiguration returns the board used by the custom game.
func CustomConfiguration() engine.Configuration {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return customBoard
}

// SetLogger sets the logger handed to every new engine.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	logger = l
	settingsMu.Unlock()
}

func currentLogger() *log.Logger {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return logger
}

// Board returns the engine configuration the game with the given ID plays on.
func Board(id string) (engine.Configuration, error) {
	c, _, err := boardFor(id)
	return c, err
}

// IDs returns the playable game IDs in configuration order, custom last.
func IDs() []string {
	s := Settings()
	ids := make([]string, 0, len(s.Presets)+1)
	for _, p := range s.Presets {
		ids = append(ids, p.ID)
	}
	return append(ids, CustomID)
}

// boardFor resolves the engine configuration and display title for a game ID.
func boardFor(id string) (engine.Configuration, string, error) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()

	if id == CustomID {
		return customBoard, "Custom", nil
	}
	p, ok := settings.Preset(id)
	if !ok {
		return engine.Configuration{}, "", fmt.Errorf("%w: %q", config.ErrUnknownPreset, id)
	}
	title := p.Title
	if title == "" {
		title = p.ID
	}
	return settings.Board(p), title, nil
}
