package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/picodino/internal/platform/tui"
	"github.com/vovakirdan/picodino/internal/registry"
	"github.com/vovakirdan/picodino/internal/storage"
)

var (
	flagBackend    string
	flagFPS        int
	flagMaxFPS     int
	flagInk        string
	flagQuadrant   bool
	flagScoreboard bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game in the terminal",
	Long: `Play PicoDino on one of the terminal backends.

Controls:
  space, up, w  - Jump
  r             - Reset
  p             - Pause
  q, ctrl+c     - Quit

Examples:
  picodino play
  picodino play --backend direct --max-fps 120
  picodino play --ink green --quadrant --scoreboard`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagBackend, "backend", "b", tui.BackendID, "Backend to play on (see 'picodino list')")
	playCmd.Flags().IntVar(&flagFPS, "fps", tui.DefaultFPS, "Frame rate of the tui backend")
	playCmd.Flags().IntVar(&flagMaxFPS, "max-fps", 0, "Frame cap of the direct backend (0 = unthrottled)")
	playCmd.Flags().StringVar(&flagInk, "ink", "", "Lit pixel colour: white, green, amber, cyan, blue")
	playCmd.Flags().BoolVar(&flagQuadrant, "quadrant", false, "Draw 2x2 pixels per cell for small terminals")
	playCmd.Flags().BoolVar(&flagScoreboard, "scoreboard", false, "Show the session scoreboard after quitting")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q (run 'picodino list')", flagBackend)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", backend.ID(), "seed", flagSeed, "difficulty", flagDifficulty)
	return backend.Run(ctx, registry.Options{
		Config:     cfg,
		Seed:       flagSeed,
		Store:      store,
		Logger:     logger,
		Out:        cmd.OutOrStdout(),
		FPS:        flagFPS,
		MaxFPS:     flagMaxFPS,
		Ink:        flagInk,
		Quadrant:   flagQuadrant,
		Scoreboard: flagScoreboard,
	})
}

// openStore opens the session run log. The game is playable without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(storage.DefaultName)
	if err != nil {
		logger.Warn("run log unavailable", "error", err)
		return nil
	}
	return store
}
