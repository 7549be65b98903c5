package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows every board preset from the configuration plus the custom board.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	ids := minesweeper.IDs()
	def := minesweeper.Settings().Rules.DefaultPreset

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-*s  %-10s  %-6s  %-5s  %s\n", maxIDLen, "ID", "Size", "Mines", "Limit", "Title")
	fmt.Printf("  %-*s  %-10s  %-6s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "-----", "-----")

	for _, id := range ids {
		board, err := minesweeper.Board(id)
		if err != nil {
			continue
		}
		game, err := registry.Create(id)
		if err != nil {
			continue
		}

		limit := "-"
		if board.HasTimeLimit() {
			limit = fmt.Sprintf("%d", board.TimeLimit)
		}
		title := game.Title()
		if id == def {
			title += " (default)"
		}
		fmt.Printf("  %-*s  %-10s  %-6d  %-5s  %s\n",
			maxIDLen, id, fmt.Sprintf("%dx%d", board.Width, board.Height), board.Mines, limit, title)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper play <id>' to play a board. easy, normal and hard also work.")
}
