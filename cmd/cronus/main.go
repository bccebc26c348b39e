// cronus is Cronus Cash: a single-screen platformer about grabbing coins
// before the clock runs out.
//
// Usage:
//
//	cronus play            - Play in the terminal
//	cronus window          - Play in a desktop window
//	cronus sim             - Run seeded autopilot sessions and report
//	cronus list            - List available games
//	cronus config dump     - Print the effective config as YAML
//	cronus config validate - Check a config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cronus-cash/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/cronus-cash/internal/games/cronus"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cronus",
	Short: "Cronus Cash - grab the coins before time runs out",
	Long: `Cronus Cash is a single-screen platformer. Run, jump and wall-jump
between moving platforms to collect coins before the two-minute clock
expires. Time orbs appear now and then and add seconds back.

Examples:
  cronus play
  cronus play --difficulty hard
  cronus window --seed 42
  cronus sim --runs 20 --seconds 120
  cronus config dump > my.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the --log-level threshold.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadGameConfig resolves the config file and applies --difficulty.
func loadGameConfig(logger *log.Logger) (config.CronusConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.CronusConfig{}, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, source, err := config.LoadCronus(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyCronusPreset(&cfg, preset)
	}

	logger.Info("config loaded", "source", source, "difficulty", cfg.Difficulty.Enabled, "time_limit", cfg.Session.TimeLimit)
	return cfg, nil
}
