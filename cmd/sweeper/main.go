// sweeper is a terminal minesweeper with local and SSH play.
//
// Usage:
//
//	sweeper list                 - List available boards
//	sweeper play [board]         - Play a board (preset, easy/normal/hard or custom)
//	sweeper menu                 - Pick boards interactively
//	sweeper scores [board]       - Show best times and statistics
//	sweeper config               - Print the active configuration
//	sweeper serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Frames per second (default: 30)
//	--seed <value>       - RNG seed for reproducible boards
//	--db <path>          - Results database (default: ~/.sweeper/results.db)
//	--config <path>      - Minesweeper YAML config
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Where play and menu write logs (discarded when empty)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `Sweeper is a terminal minesweeper. Clear every safe cell without
revealing a mine, locally or over SSH.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board picker
  scores   - View best times and statistics
  config   - Print the active configuration
  serve    - Start SSH server for remote play

Examples:
  sweeper list
  sweeper play beginner
  sweeper play hard
  sweeper play custom --width 30 --height 16 --mines 99
  sweeper menu
  sweeper serve --ssh :2222
  sweeper scores intermediate`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to minesweeper config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play and menu (logs are discarded when empty)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
