// heartchase is a terminal rendition of a tiny handheld maze game: guide the
// player through the maze, catch the drifting hearts, and stay ahead of the
// pumpkins.
//
// Usage:
//
//	heartchase play          - Play in the local terminal
//	heartchase serve         - Start SSH server for remote play
//	heartchase scores        - Show recorded session results
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.heartchase/results.db)
//	--seed <value>  - Set RNG seed for reproducible heart drift
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heartchase",
	Short: "Heart Chase - a maze chase game in your terminal",
	Long: `Heart Chase is a terminal maze game. Collect every drifting heart on
each level while the pumpkins hunt you down.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  scores   - View recorded session results

Examples:
  heartchase play
  heartchase play --mute --seed 42
  heartchase serve --ssh :2222
  heartchase scores --wins`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.heartchase/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
