package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cronus-cash/internal/games/cronus"
)

var (
	flagRuns    int
	flagSeconds float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run autopilot sessions without a display",
	Long: `Play seeded sessions with a scripted autopilot (run at the coin, jump
when it is above or when touching a wall) and report coins, jumps and orbs.
Runs use seeds --seed, --seed+1, ... so results are reproducible.

Examples:
  cronus sim
  cronus sim --runs 50 --seconds 120 --seed 7
  cronus sim --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of sessions")
	simCmd.Flags().Float64Var(&flagSeconds, "seconds", 120, "Simulated seconds per session")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}
	if flagSeconds <= 0 {
		return fmt.Errorf("--seconds must be positive, got %v", flagSeconds)
	}

	logger, err := newLogger(cmd.OutOrStdout(), "sim")
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	reports := make([]cronus.Report, 0, flagRuns)
	for i := range flagRuns {
		rep := cronus.RunHeadless(cfg, cronus.HeadlessOptions{
			Seed:     seed + int64(i),
			Seconds:  flagSeconds,
			TickRate: flagFPS,
		})
		reports = append(reports, rep)

		logger.Info("run",
			"seed", rep.Seed,
			"coins", rep.Coins,
			"seconds", fmt.Sprintf("%.1f", rep.Seconds),
			"finished", rep.Finished,
			"jumps", rep.Stats.Jumps,
			"wall_jumps", rep.Stats.WallJumps,
			"orbs", fmt.Sprintf("%d/%d", rep.Stats.OrbsCollected, rep.Stats.OrbsSpawned),
		)
		logger.Debug("events", "seed", rep.Seed, "counts", rep.EventKind, "fallbacks", rep.Stats.CoinFallbacks)
	}

	sum := cronus.Summarize(reports)
	logger.Info("summary",
		"runs", sum.Runs,
		"coins", sum.Coins,
		"mean", fmt.Sprintf("%.2f", sum.MeanCoins),
		"best", sum.BestCoins,
		"best_seed", sum.BestSeed,
		"jumps", sum.Stats.Jumps,
		"wall_jumps", sum.Stats.WallJumps,
		"orbs", sum.Stats.OrbsCollected,
	)
	return nil
}
