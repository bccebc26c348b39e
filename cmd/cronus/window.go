package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cronus-cash/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Cronus Cash in a resizable desktop window at the arena's native
pixel size. Resizing the window resizes the arena: walls follow the edges.

Controls:
  A/D, ←/→     - Move
  W/Space/↑    - Jump
  P            - Pause
  R            - Restart (after time is up)
  Esc          - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr, "window")
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := window.New(cfg, window.Options{
		Seed:     seed,
		TickRate: flagFPS,
		Logger:   logger,
	})
	if err := window.Run(g, "Cronus Cash"); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
