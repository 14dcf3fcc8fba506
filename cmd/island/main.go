// island is a TUI exploration game lived entirely in the terminal.
//
// Usage:
//
//	island play              - Set out on the island
//	island world             - Inspect the current island layout
//	island scores            - Show best expeditions
//	island reset             - Forget the saved island and scores
//	island serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set world seed (0 = random based on time)
//	--db <path>     - Set database path (default: ~/.island/island.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-island/internal/games/island"
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "island",
	Short: "Island - Explore a tiny island in your terminal",
	Long: `Island is a terminal exploration game. Wander the shore, shake the
trees for fruit, poke at rocks, and try not to wake what sleeps in
the branches. The island persists between sessions.

Available commands:
  play     - Set out on the island
  world    - Inspect the current island layout
  scores   - View best expeditions
  reset    - Forget the saved island and scores
  serve    - Start SSH server for remote play

Examples:
  island play
  island play --seed 42
  island world
  island scores
  island serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.island/island.db", "Path to the island database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}
