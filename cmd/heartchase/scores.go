package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dermotk/heart-chase/internal/platform/tui"
	"github.com/dermotk/heart-chase/internal/storage"
)

var (
	flagWins        bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded session results",
	Long: `Display recorded game sessions: the most recent runs, or every win
ranked by completion time.

Examples:
  heartchase scores
  heartchase scores --wins
  heartchase scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagWins, "wins", false, "Show only wins, fastest first")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse results in a scrollable table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var entries []storage.ResultEntry
	if flagWins {
		entries, err = store.Wins()
		fmt.Println("Wins (fastest first)")
	} else {
		entries, err = store.RecentResults(10)
		fmt.Println("Recent Sessions")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'heartchase play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-5s  %-6s  %s\n", "When", "Outcome", "Level", "Hearts", "Time")
	fmt.Printf("  %-16s  %-10s  %-5s  %-6s  %s\n", "----", "-------", "-----", "------", "----")

	for _, e := range entries {
		fmt.Printf("  %-16s  %-10s  %-5d  %-6d  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Outcome,
			e.Level,
			e.Hearts,
			(time.Duration(e.DurationMS) * time.Millisecond).Round(time.Second),
		)
	}
}
