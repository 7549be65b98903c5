package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show best times and statistics",
	Long: `Without an argument, show played/won totals for every board.
With a board, show its fastest wins.

Examples:
  sweeper scores
  sweeper scores beginner
  sweeper scores hard --limit 20
  sweeper scores beginner --recent
  sweeper scores custom --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest rounds, won or lost, instead of best times")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored result for the board")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printAllStats(store)
	}

	gameID, err := resolveBoard(args[0], false)
	if err != nil {
		return fmt.Errorf("%w\nRun 'sweeper list' to see available boards", err)
	}

	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return nil
	}

	return printBoardScores(store, gameID)
}

// printAllStats prints one totals line per board in configuration order.
func printAllStats(store *storage.Store) error {
	stats, err := store.AllGameStats()
	if err != nil {
		return err
	}

	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  %-14s  %-6s  %-4s  %-5s  %-6s  %s\n", "Board", "Played", "Won", "Win%", "Best", "Avg")
	fmt.Printf("  %-14s  %-6s  %-4s  %-5s  %-6s  %s\n", "-----", "------", "---", "----", "----", "---")

	for _, id := range minesweeper.IDs() {
		st, ok := stats[id]
		if !ok {
			fmt.Printf("  %-14s  %-6d  %-4s  %-5s  %-6s  %s\n", id, 0, "-", "-", "-", "-")
			continue
		}
		fmt.Printf("  %-14s  %-6d  %-4d  %-5s  %-6s  %s\n",
			id, st.Played, st.Won,
			fmt.Sprintf("%.0f%%", st.WinRate()*100),
			secondsOrDash(float64(st.BestTime)),
			secondsOrDash(st.AvgTime),
		)
	}
	return nil
}

// printBoardScores prints the fastest wins or the latest rounds for one board.
func printBoardScores(store *storage.Store, gameID string) error {
	title := gameID
	if game, err := registry.Create(gameID); err == nil {
		title = game.Title()
	}

	var (
		results []storage.Result
		err     error
	)
	if flagRecent {
		fmt.Printf("Recent Rounds - %s\n", title)
		results, err = store.RecentResults(gameID, flagScoresLimit)
	} else {
		fmt.Printf("Best Times - %s\n", title)
		results, err = store.BestTimes(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sweeper play %s' to set the first time!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-10s  %-12s  %s\n", "Rank", "Time", "Board", "Player", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-10s  %-12s  %s\n", "----", "----", "-----", "------", "------", "----")

	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		outcome := "won"
		if !r.Won {
			outcome = "lost"
		}
		fmt.Printf("  %-4d  %-6s  %-8s  %-10s  %-12s  %s\n",
			i+1,
			fmt.Sprintf("%ds", r.Elapsed),
			fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines),
			player,
			outcome,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GameStats(gameID)
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%)", stats.Played, stats.Won, stats.WinRate()*100)
		if stats.Won > 0 {
			fmt.Printf(", best %ds, average %.1fs", stats.BestTime, stats.AvgTime)
		}
		fmt.Println()
	}
	return nil
}

func secondsOrDash(v float64) string {
	if v <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0fs", v)
}
