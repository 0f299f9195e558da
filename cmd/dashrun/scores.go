package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashrun/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best recorded runs and overall stats.

Examples:
  dashrun scores
  dashrun scores --limit 25
  dashrun scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Dash Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dashrun play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-7s  %-6s  %-7s  %-4s  %s\n", "Rank", "Score", "Time", "Dodged", "Top Spd", "Host", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %-6s  %-7s  %-4s  %s\n", "----", "-----", "----", "------", "-------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-7s  %-6d  %-7.1f  %-4s  %s\n",
			i+1, r.Score, r.Duration.Round(100*time.Millisecond), r.Dodged, r.PeakSpeed, r.Host,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Best: %d  |  Runs: %d  |  Avg: %.0f  |  Played: %s\n",
		stats.BestScore, stats.Runs, stats.AvgScore, stats.TotalTime.Round(time.Second))
	return nil
}
