package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
	"github.com/vovakirdan/tui-riverraid/internal/registry"
	"github.com/vovakirdan/tui-riverraid/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the leaderboard of a mode",
	Long: `Display the best runs of a mode, River Raid classic by default.

Examples:
  riverraid scores
  riverraid scores riverraid_rapid --limit 25
  riverraid scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every run of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := riverraid.ClassicID
	if len(args) > 0 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'riverraid list' to see available modes", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared the %s leaderboard.\n", game.Title())
		return nil
	}

	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'riverraid play %s' to set the first high score!\n", gameID)
		return nil
	}

	printRuns(runs)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.0f  |  Longest flight: %.0f\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LongestFlight)
	return nil
}

func printRuns(runs []storage.Run) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Rank\tScore\tDistance\tEnded by\tDate")
	fmt.Fprintln(tw, "  ----\t-----\t--------\t--------\t----")
	for i, r := range runs {
		reason := r.Reason
		if reason == "" {
			reason = "-"
		}
		fmt.Fprintf(tw, "  %d\t%d\t%.0f\t%s\t%s\n",
			i+1, r.Score, r.Distance, reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}
