package cronus

import (
	"math/rand"

	"github.com/vovakirdan/cronus-cash/internal/config"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"
)

// Report summarises one headless session.
type Report struct {
	Seed      int64
	Ticks     uint64
	Seconds   float64
	Coins     int
	TimeLeft  float64
	Finished  bool
	Stats     sim.Stats
	Landings  int
	EventKind map[string]int
}

// HeadlessOptions configures RunHeadless.
type HeadlessOptions struct {
	Seed     int64
	Seconds  float64 // simulated wall time; the session may end sooner
	TickRate int
}

// RunHeadless plays one session with the autopilot and no frontend. The
// run stops when the clock expires or after opts.Seconds of simulated time.
func RunHeadless(cfg config.CronusConfig, opts HeadlessOptions) Report {
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	dt := 1 / float64(tickRate)
	maxTicks := int(opts.Seconds * float64(tickRate))

	canvas := ArenaCanvas(cfg)
	world := NewWorld(cfg, rand.New(rand.NewSource(opts.Seed)), canvas)
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	pilot := NewAutopilot()

	rep := Report{Seed: opts.Seed, EventKind: make(map[string]int)}
	for i := 0; i < maxTicks && world.State() == sim.Playing; i++ {
		world.SetPlatformSpeedScale(difficulty.PlatformSpeed(world.Coins(), int(world.Tick())))
		for _, ev := range world.Step(dt, pilot.Next(world.Snapshot()), canvas) {
			rep.EventKind[ev.Kind()]++
			if _, ok := ev.(sim.Landed); ok {
				rep.Landings++
			}
		}
	}

	rep.Ticks = world.Tick()
	rep.Seconds = float64(rep.Ticks) * dt
	rep.Coins = world.Coins()
	rep.TimeLeft = world.TimeRemaining()
	rep.Finished = world.State() == sim.GameOver
	rep.Stats = world.Stats()
	return rep
}

// Summary aggregates several reports.
type Summary struct {
	Runs      int
	Coins     int
	BestCoins int
	BestSeed  int64
	MeanCoins float64
	Stats     sim.Stats
}

// Summarize totals reports. The best run is the first with the most coins.
func Summarize(reports []Report) Summary {
	var s Summary
	for i, r := range reports {
		s.Runs++
		s.Coins += r.Coins
		if i == 0 || r.Coins > s.BestCoins {
			s.BestCoins = r.Coins
			s.BestSeed = r.Seed
		}
		s.Stats.Jumps += r.Stats.Jumps
		s.Stats.WallJumps += r.Stats.WallJumps
		s.Stats.OrbsSpawned += r.Stats.OrbsSpawned
		s.Stats.OrbsCollected += r.Stats.OrbsCollected
		s.Stats.CoinFallbacks += r.Stats.CoinFallbacks
	}
	if s.Runs > 0 {
		s.MeanCoins = float64(s.Coins) / float64(s.Runs)
	}
	return s
}
