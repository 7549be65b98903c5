package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/engine"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Presets: []Preset{
			{
				ID:            "beginner",
				Title:         "Beginner",
				Configuration: engine.Configuration{Width: 5, Height: 5, Mines: 5, TimeLimit: 999},
			},
			{
				ID:            "intermediate",
				Title:         "Intermediate",
				Configuration: engine.Configuration{Width: 15, Height: 15, Mines: 30, TimeLimit: 999},
			},
			{
				ID:            "advanced",
				Title:         "Advanced",
				Configuration: engine.Configuration{Width: 20, Height: 20, Mines: 50, TimeLimit: 999},
			},
		},
		Rules: Rules{
			TimeLimitEnabled: true,
			DefaultPreset:    "beginner",
		},
		Display: Display{
			NumberColors: []string{
				"bright-blue", "green", "bright-red", "blue",
				"red", "cyan", "magenta", "gray",
			},
			Covered: "·",
			Flag:    "⚑",
			Mine:    "*",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMinesweeperYAML
}

// fillDefaults completes a partially specified config with built-in values.
func fillDefaults(cfg *MinesweeperConfig) {
	def := DefaultMinesweeperConfig()
	if len(cfg.Presets) == 0 {
		cfg.Presets = def.Presets
	}
	if _, ok := cfg.Preset(cfg.Rules.DefaultPreset); !ok {
		cfg.Rules.DefaultPreset = cfg.Presets[0].ID
	}
	if len(cfg.Display.NumberColors) == 0 {
		cfg.Display.NumberColors = def.Display.NumberColors
	}
	if cfg.Display.Covered == "" {
		cfg.Display.Covered = def.Display.Covered
	}
	if cfg.Display.Flag == "" {
		cfg.Display.Flag = def.Display.Flag
	}
	if cfg.Display.Mine == "" {
		cfg.Display.Mine = def.Display.Mine
	}
}
