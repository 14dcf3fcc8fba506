package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-island/internal/core"
	islandgame "github.com/vovakirdan/tui-island/internal/games/island"
	"github.com/vovakirdan/tui-island/internal/platform/tui"
	"github.com/vovakirdan/tui-island/internal/registry"
	"github.com/vovakirdan/tui-island/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Set out on the island",
	Long: `Start an expedition on the island.

Controls:
  WASD/Arrows - Walk
  Space/E     - Interact (shake a tree, enter the house)
  P           - Pause
  R           - Restart (after the expedition ends)
  Q/Ctrl+C    - Quit

The island is saved between sessions: shaken trees stay shaken until
the expedition ends badly or you run 'island reset'.

Examples:
  island play
  island play --seed 42
  island play --config ./my-island.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom island config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Wire config and persistence before the game is created
	islandgame.SetConfigPath(flagConfig)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open island database: %v\n", err)
		// Continue without storage - the island just won't persist
		store = nil
	} else {
		islandgame.SetWorldStore(store)
	}

	game, err := registry.Create("island")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
