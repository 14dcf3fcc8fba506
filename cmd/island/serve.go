package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	islandgame "github.com/vovakirdan/tui-island/internal/games/island"
	"github.com/vovakirdan/tui-island/internal/platform/tui"
	"github.com/vovakirdan/tui-island/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the island SSH server",
	Long: `Start an SSH server so players can explore the island remotely.

All sessions share the same island and the same expedition records:
a tree shaken by one player stays shaken for everyone.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.island/host_key

Examples:
  island serve                           # Listen on :23234 with auto-generated key
  island serve --ssh :2222               # Listen on port 2222
  island serve --host-key ./my_host_key  # Use specific host key
  island serve --db ./island.db          # Use specific database

Players can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening island database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	islandgame.SetWorldStore(store)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting island SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
