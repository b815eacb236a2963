package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dogisland/internal/core"
	"github.com/vovakirdan/dogisland/internal/games/dogisland"
	"github.com/vovakirdan/dogisland/internal/logging"
	"github.com/vovakirdan/dogisland/internal/platform/tui"
	"github.com/vovakirdan/dogisland/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a round in this terminal. The mode defaults to dogisland,
the fixed island layout; dogisland_random scatters the islands.

Controls:
  Arrows/WASD  - Sail
  Mouse        - Hold the left button to steer toward the pointer
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Logs go to ~/.dogisland/dogisland.log while the game owns the terminal.

Examples:
  dogisland play
  dogisland play dogisland_random
  dogisland play --difficulty hard
  dogisland play --config ./my-island.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := dogisland.IDFixed
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'dogisland list' to see available modes", gameID)
	}

	logFile, err := logging.OpenFile("dogisland.log")
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

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

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("play", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
