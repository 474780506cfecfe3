package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresClear  bool
	flagScoresLimit  int
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best runs and the overall high score.

Examples:
  flappy scores
  flappy scores --recent --limit 20
  flappy scores --tui
  flappy scores --clear`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs and the high score")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	title := "Best Runs"
	runs, err := store.TopRuns(flagScoresLimit)
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Flappy Bird - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %s\n", "Rank", "Score", "Medal", "Mode", "When")
	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %s\n", "----", "-----", "-----", "----", "----")
	for i, run := range runs {
		mode := "normal"
		if run.Easy {
			mode = "easy"
		}
		fmt.Printf("  %-4d  %-6d  %-8s  %-6s  %s\n", i+1, run.Score, run.Medal, mode, humanize.Time(run.CreatedAt))
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Printf("Runs: %s, average %.1f, total %s\n",
			humanize.Comma(int64(stats.Runs)), stats.AvgScore, humanize.Comma(stats.TotalScore))
	}
	return nil
}
