package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cronus-cash/internal/audio"
	"github.com/vovakirdan/cronus-cash/internal/core"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus"
	"github.com/vovakirdan/cronus-cash/internal/platform/tui"
	"github.com/vovakirdan/cronus-cash/internal/registry"
)

var (
	flagLogFile       string
	flagSound         bool
	flagVolume        float64
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to cronus.

Controls:
  A/D, ←/→     - Move
  Space/W/↑    - Jump (double jump in the air, wall jump against a wall)
  P/Esc        - Pause
  R            - Restart (after time is up)
  Ctrl+S       - Save a text screenshot
  Ctrl+Y       - Copy the frame to the clipboard
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Terminals only report key presses, so a movement key counts as held for
a short while after each press or auto-repeat.

Difficulty options:
  easy   - Extra 30 seconds, platforms speed up as you collect coins
  normal - Platforms start 30% faster and speed up as you collect coins
  hard   - Platforms start 70% faster and speed up as you collect coins
  fixed  - No progression

Examples:
  cronus play
  cronus play --difficulty easy
  cronus play --sound --log-file cronus.log
  cronus play --config ./my-cronus.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy drawing)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshot-dir", "", "Screenshot directory (default ~/.cronus/screenshots)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := cronus.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'cronus list' to see available games", gameID)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "play")
	if err != nil {
		return err
	}

	// Fail fast on a broken --config before the terminal switches screens.
	if _, err := loadGameConfig(logger); err != nil {
		return err
	}
	cronus.SetConfigPath(flagConfig)
	cronus.SetDifficultyPreset(flagDifficulty)

	// Get terminal size
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
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.Options{
		Logger:        logger,
		ScreenshotDir: flagScreenshotDir,
	}
	if flagSound {
		sm := audio.NewSoundManager(flagVolume)
		if err := sm.Initialize(); err != nil {
			// Best effort: play on without sound.
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Close()
			opts.Sound = sm
		}
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
