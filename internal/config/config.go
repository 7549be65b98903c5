// Package config provides YAML-based configuration loading for the sweeper
// platform: board presets, rule toggles and display settings.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/engine"
)

// ErrUnknownPreset is returned when a preset ID or difficulty is not configured.
var ErrUnknownPreset = errors.New("config: unknown preset")

// MinesweeperConfig contains all configuration for the minesweeper game.
type MinesweeperConfig struct {
	Presets []Preset `yaml:"presets"`
	Rules   Rules    `yaml:"rules"`
	Display Display  `yaml:"display"`
}

// Preset is a named board configuration.
type Preset struct {
	ID                   string `yaml:"id"`
	Title                string `yaml:"title"`
	engine.Configuration `yaml:",inline"`
}

// Rules toggles optional gameplay rules.
type Rules struct {
	TimeLimitEnabled bool   `yaml:"time_limit_enabled"`
	DefaultPreset    string `yaml:"default_preset"`
}

// Display defines how the board is drawn.
type Display struct {
	NumberColors []string `yaml:"number_colors"` // Colors for counts 1..8
	Covered      string   `yaml:"covered"`
	Flag         string   `yaml:"flag"`
	Mine         string   `yaml:"mine"`
}

// Preset returns the preset with the given ID.
func (c MinesweeperConfig) Preset(id string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve finds a preset by ID or by difficulty shorthand (easy, normal, hard).
func (c MinesweeperConfig) Resolve(name string) (Preset, error) {
	if p, ok := c.Preset(name); ok {
		return p, nil
	}
	if id, ok := PresetForDifficulty(DifficultyPreset(name)); ok {
		if p, ok := c.Preset(id); ok {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Board returns the engine configuration for p with the rule toggles applied.
func (c MinesweeperConfig) Board(p Preset) engine.Configuration {
	board := p.Configuration
	if !c.Rules.TimeLimitEnabled {
		board.TimeLimit = 0
	}
	return board
}

// Validate checks every preset against the engine rules and the display settings.
func (c MinesweeperConfig) Validate() error {
	if len(c.Presets) == 0 {
		return errors.New("config: no presets defined")
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return errors.New("config: preset without id")
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q", p.ID)
		}
		seen[p.ID] = true

		if err := p.Configuration.Validate(); err != nil {
			return fmt.Errorf("config: preset %q: %w", p.ID, err)
		}
	}

	if c.Rules.DefaultPreset != "" && !seen[c.Rules.DefaultPreset] {
		return fmt.Errorf("config: default preset %q: %w", c.Rules.DefaultPreset, ErrUnknownPreset)
	}

	if len(c.Display.NumberColors) > 8 {
		return fmt.Errorf("config: %d number colors, at most 8 allowed", len(c.Display.NumberColors))
	}
	for name, glyph := range map[string]string{"covered": c.Display.Covered, "flag": c.Display.Flag, "mine": c.Display.Mine} {
		if glyph != "" && utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("config: display %s must be a single character, got %q", name, glyph)
		}
	}
	return nil
}

// Glyph returns the first rune of s, or fallback when s is empty.
func Glyph(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
