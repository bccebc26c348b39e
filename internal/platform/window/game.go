// Package window runs Cronus Cash in a desktop window with Ebiten. The
// canvas follows the window size, so walls and bounds move when it is
// resized.
package window

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/cronus-cash/internal/config"
	"github.com/vovakirdan/cronus-cash/internal/core"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"
)

// Options configures a window session.
type Options struct {
	Seed     int64
	TickRate int
	Logger   *log.Logger
}

// Game implements ebiten.Game.
type Game struct {
	world      *sim.World
	difficulty *config.DifficultyManager
	canvas     sim.Canvas
	dt         float64
	tickRate   int
	paused     bool
	keys       keyState
	logger     *log.Logger
}

// New creates a window game with the canvas set to the configured arena.
func New(cfg config.CronusConfig, opts Options) *Game {
	rt := core.RuntimeConfig{TickRate: opts.TickRate}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	canvas := cronus.ArenaCanvas(cfg)
	return &Game{
		world:      cronus.NewWorld(cfg, rand.New(rand.NewSource(opts.Seed)), canvas),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		canvas:     canvas,
		dt:         rt.Dt(),
		tickRate:   rt.TickRate,
		keys:       ebitenKeys{},
		logger:     logger,
	}
}

// Update advances one fixed tick.
func (g *Game) Update() error {
	c := readControls(g.keys)
	if c.quit {
		return ebiten.Termination
	}
	g.step(c)
	return nil
}

func (g *Game) step(c controls) {
	if c.pause && g.world.State() == sim.Playing {
		g.paused = !g.paused
		g.logger.Debug("pause", "paused", g.paused)
	}
	if g.paused {
		return
	}

	g.world.SetPlatformSpeedScale(g.difficulty.PlatformSpeed(g.world.Coins(), int(g.world.Tick())))
	for _, ev := range g.world.Step(g.dt, c.sim, g.canvas) {
		switch ev.(type) {
		case sim.Jumped, sim.WallJumped, sim.Landed, sim.CoinSpawned:
			g.logger.Debug(ev.Kind(), ev.Fields()...)
		default:
			g.logger.Info(ev.Kind(), ev.Fields()...)
		}
	}
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.world.Snapshot()
	if s.State == sim.GameOver {
		drawGameOver(screen, s)
		return
	}
	drawWorld(screen, s)
	drawHUD(screen, s, g.paused)
}

// Layout makes the canvas match the window in device-independent pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas = sim.Canvas{W: float64(outsideWidth), H: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// Canvas returns the size the next tick will use.
func (g *Game) Canvas() sim.Canvas {
	return g.canvas
}

// Run opens a resizable window sized to the arena and blocks until it is
// closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(g.canvas.W), int(g.canvas.H))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tickRate)

	g.logger.Info("window opened", "width", g.canvas.W, "height", g.canvas.H, "tps", g.tickRate)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	g.logger.Info("window closed", "coins", g.world.Coins())
	return nil
}
