package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var (
	flagWidth     int
	flagHeight    int
	flagMines     int
	flagTimeLimit int
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board. Without an argument the configured
default preset is played.

Boards:
  beginner, intermediate, advanced (or any preset from the config)
  easy, normal, hard               shorthands for the three presets
  custom                           sized with --width, --height, --mines

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Space/Enter       - Reveal cell
  F/X               - Toggle flag
  Mouse             - Left click reveals, right click flags
  P                 - Pause
  R                 - New game on the same board
  Esc/B             - Leave (after game over or while paused)
  Ctrl+S            - Save screenshot
  Q/Ctrl+C          - Quit

Examples:
  sweeper play
  sweeper play intermediate
  sweeper play hard --seed 42
  sweeper play custom --width 30 --height 16 --mines 99 --time-limit 0
  sweeper play --config ./my-minesweeper.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom board mine count")
	playCmd.Flags().IntVar(&flagTimeLimit, "time-limit", 0, "Custom board time limit in seconds (0 = none)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	custom := false
	for _, f := range []string{"width", "height", "mines", "time-limit"} {
		custom = custom || cmd.Flags().Changed(f)
	}
	if custom {
		board := customBoard(minesweeper.CustomConfiguration(), cmd)
		if err := minesweeper.SetCustomConfiguration(board); err != nil {
			return fmt.Errorf("custom board %s: %w", board, err)
		}
	}

	gameID, err := resolveBoard(name, custom)
	if err != nil {
		return fmt.Errorf("%w\nRun 'sweeper list' to see available boards", err)
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	minesweeper.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// resolveBoard turns a board argument into a registered game ID.
func resolveBoard(name string, custom bool) (string, error) {
	if custom || name == minesweeper.CustomID {
		return minesweeper.CustomID, nil
	}

	settings := minesweeper.Settings()
	if name == "" {
		name = settings.Rules.DefaultPreset
	}
	p, err := settings.Resolve(name)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// customBoard overrides base with the board flags that were set.
func customBoard(base engine.Configuration, cmd *cobra.Command) engine.Configuration {
	if cmd.Flags().Changed("width") {
		base.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		base.Height = flagHeight
	}
	if cmd.Flags().Changed("mines") {
		base.Mines = flagMines
	}
	if cmd.Flags().Changed("time-limit") {
		base.TimeLimit = flagTimeLimit
	}
	return base
}
