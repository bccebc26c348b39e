// Package cronus adapts the Cronus Cash simulation to the platform's
// registry.Game interface: fixed-step ticks, action input and a character
// grid renderer.
package cronus

import (
	"math/rand"

	"github.com/vovakirdan/cronus-cash/internal/config"
	"github.com/vovakirdan/cronus-cash/internal/core"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"
	"github.com/vovakirdan/cronus-cash/internal/registry"
)

// GameID is the registry identifier.
const GameID = "cronus"

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty or unknown name
// keeps the loaded config's difficulty settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = ""
	if preset == "" {
		return
	}
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	}
}

// Game runs one Cronus Cash session on a character grid. The arena keeps
// its configured pixel size; the grid only changes how coarsely it is drawn.
type Game struct {
	cfg        config.CronusConfig
	runtime    core.RuntimeConfig
	world      *sim.World
	difficulty *config.DifficultyManager
	canvas     sim.Canvas
	paused     bool

	// Pixels per character cell.
	cellW float64
	cellH float64
}

// New creates an unstarted game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one in Reset.
func NewWithConfig(cfg config.CronusConfig) *Game {
	return &Game{cfg: cfg, difficulty: config.NewDifficultyManager(cfg.Difficulty)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cronus Cash"
}

// Reset starts a new session sized for the given screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.difficulty == nil {
		cfg, _, err := config.LoadCronus(configPath)
		if err != nil {
			cfg = config.DefaultCronusConfig()
		}
		if difficultyPreset != "" {
			config.ApplyCronusPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	}

	g.canvas = ArenaCanvas(g.cfg)
	g.layout()
	g.paused = false

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(g.cfg, rng, g.canvas)
}

// Resize follows a terminal resize without restarting the session.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.layout()
}

// layout computes the cell size; row 0 is reserved for the HUD.
func (g *Game) layout() {
	cols := max(g.runtime.ScreenW, 1)
	rows := max(g.runtime.ScreenH-hudRows, 1)
	g.cellW = g.canvas.W / float64(cols)
	g.cellH = g.canvas.H / float64(rows)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) && g.world.State() == sim.Playing {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.SetPlatformSpeedScale(g.difficulty.PlatformSpeed(g.world.Coins(), int(g.world.Tick())))
	events := g.world.Step(g.runtime.Dt(), toSimInput(in), g.canvas)

	return core.StepResult{State: g.State(), Events: events}
}

// toSimInput maps platform actions onto simulation input. Movement counts
// when held or freshly pressed; jump and restart are edges.
func toSimInput(in core.InputFrame) sim.Input {
	return sim.Input{
		Left:    in.IsHeld(core.ActionLeft) || in.Has(core.ActionLeft),
		Right:   in.IsHeld(core.ActionRight) || in.Has(core.ActionRight),
		Jump:    in.Has(core.ActionJump),
		Restart: in.Has(core.ActionRestart),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Coins(),
		GameOver: g.world.State() == sim.GameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the simulation's drawable state.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Stats returns session counters since the last restart.
func (g *Game) Stats() sim.Stats {
	return g.world.Stats()
}
