package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-island/internal/storage"
)

var (
	flagResetYes    bool
	flagResetScores bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved island",
	Long: `Delete the saved island so the next 'island play' generates a fresh
one. Shaken trees grow their fruit back, in a manner of speaking.

By default expedition scores are kept. Pass --scores to wipe those too.

Examples:
  island reset
  island reset --yes
  island reset --scores`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
	resetCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also delete recorded expeditions")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagResetYes {
		what := "the saved island"
		if flagResetScores {
			what = "the saved island and all recorded expeditions"
		}
		fmt.Printf("This will delete %s. Continue? [y/N] ", what)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Nothing deleted.")
			return
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening island database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearWorld(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing island: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Island forgotten. The next expedition lands on a fresh one.")

	if flagResetScores {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Expedition records wiped.")
	}
}
