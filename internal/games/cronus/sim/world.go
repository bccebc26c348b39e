package sim

import (
	"github.com/vovakirdan/cronus-cash/internal/core"
)

// State is the session phase.
type State int

const (
	Playing State = iota
	GameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Stats counts what happened since the last restart.
type Stats struct {
	Jumps         int
	WallJumps     int
	OrbsSpawned   int
	OrbsCollected int
	CoinFallbacks int
}

// World owns the whole session: player, platforms, pickups and clock.
type World struct {
	tuning    Tuning
	rng       RNG
	canvas    Canvas
	platforms []*MovingPlatform

	leftWall  core.Rect
	rightWall core.Rect

	player Player

	coin      core.Vec2
	orb       core.Vec2
	orbActive bool
	orbTimer  float64

	timeRemaining float64
	coins         int
	state         State
	tick          uint64
	stats         Stats

	events []Event
}

// NewWorld creates a session in the Playing state with the coin placed.
// The world takes ownership of platforms.
func NewWorld(t Tuning, platforms []*MovingPlatform, rng RNG, canvas Canvas) *World {
	w := &World{
		tuning:    t,
		rng:       rng,
		platforms: platforms,
	}
	w.setCanvas(canvas)
	w.reset()
	w.events = nil
	return w
}

// Step advances the session by dt seconds and returns what happened.
//
// While Playing a tick runs, in order: platforms, jump buffer, kinematics,
// clock and orb timer, ground, platforms in slice order, wall contact,
// jump, pickups, wall penetration and the horizontal clamp. dt <= 0 does
// nothing. While GameOver only in.Restart is honoured.
func (w *World) Step(dt float64, in Input, canvas Canvas) []Event {
	w.events = nil
	w.setCanvas(canvas)

	switch w.state {
	case GameOver:
		if in.Restart {
			w.Restart()
		}
	case Playing:
		if dt > 0 {
			w.stepPlaying(dt, in)
		}
	}

	return w.events
}

func (w *World) stepPlaying(dt float64, in Input) {
	t := w.tuning
	p := &w.player
	w.tick++

	for _, plat := range w.platforms {
		plat.Update(dt)
	}

	prevY := p.Pos.Y
	wasOnGround := p.OnGround

	bufferJump(p, in.Jump, dt, t)
	integrate(p, in.Axis(), dt, t)

	w.advanceClock(dt)
	if w.state == Playing {
		w.advanceOrbTimer(dt)
	}

	resolveGround(p, w.canvas.H, dt, t)
	surface := resolvePlatforms(p, prevY, w.platforms, t)
	if p.OnGround && !wasOnGround {
		w.emit(Landed{Platform: surface})
	}

	detectWalls(p, w.leftWall, w.rightWall)
	w.jump(tryJump(p, w.leftWall, w.rightWall, t))

	if w.state == Playing {
		w.collectPickups()
	}

	correctWallPenetration(p, w.leftWall, w.rightWall)
	clampHorizontal(p, w.canvas.W)
}

func (w *World) jump(kind jumpKind) {
	switch kind {
	case noJump:
		return
	case wallJumpLeft, wallJumpRight:
		w.stats.WallJumps++
		w.emit(WallJumped{FromLeft: kind == wallJumpLeft})
	default:
		w.stats.Jumps++
		w.emit(Jumped{JumpCount: w.player.JumpCount, Air: kind == airJump})
	}
}

// advanceClock runs the countdown and ends the session at zero.
func (w *World) advanceClock(dt float64) {
	w.timeRemaining -= dt
	if w.timeRemaining <= 0 {
		w.timeRemaining = 0
		w.finish()
	}
}

// advanceOrbTimer rolls for a time orb every OrbInterval seconds.
func (w *World) advanceOrbTimer(dt float64) {
	t := w.tuning
	w.orbTimer -= dt
	if w.orbTimer > 0 {
		return
	}
	w.orbTimer = t.OrbInterval

	if w.orbActive || w.rng.Intn(max(t.OrbChanceOneIn, 1)) != 0 {
		return
	}

	pos, ok := Sample(w.rng, SpawnRequest{
		Radius:    t.OrbRadius,
		Bounds:    boundsInset(w.canvas.W, w.canvas.H, t.OrbRadius),
		Obstacles: w.obstacles(),
		Avoid:     w.player.Pos,
		MinDist:   t.PlayerRadius + t.OrbRadius + t.OrbClearance,
		Attempts:  t.OrbAttempts,
	})
	if !ok {
		return
	}
	w.orb = pos
	w.orbActive = true
	w.stats.OrbsSpawned++
	w.emit(OrbSpawned{At: pos})
}

func (w *World) collectPickups() {
	t := w.tuning
	body := w.player.Body()

	if body.IntersectsCircle(core.Circle{Center: w.coin, Radius: t.CoinRadius}) {
		w.coins++
		w.emit(CoinCollected{Coins: w.coins, At: w.coin})
		w.respawnCoin()
	}

	if w.orbActive && body.IntersectsCircle(core.Circle{Center: w.orb, Radius: t.OrbRadius}) {
		before := w.timeRemaining
		w.timeRemaining = min(w.timeRemaining+t.OrbBonus, t.TimeLimit)
		w.orbActive = false
		w.orbTimer = t.OrbInterval
		w.stats.OrbsCollected++
		w.emit(OrbCollected{Bonus: w.timeRemaining - before, TimeRemaining: w.timeRemaining})
	}
}

// respawnCoin places the coin away from the player, above the floor band.
func (w *World) respawnCoin() {
	t := w.tuning
	areaH := w.canvas.H - t.CoinGroundMargin

	pos, ok := Sample(w.rng, SpawnRequest{
		Radius:    t.CoinRadius,
		Bounds:    boundsInset(w.canvas.W, areaH, t.CoinRadius),
		Obstacles: w.obstacles(),
		Avoid:     w.player.Pos,
		MinDist:   t.PlayerRadius + t.CoinRadius + t.CoinClearance,
		Attempts:  t.CoinAttempts,
	})
	if !ok {
		pos = core.V(w.canvas.W/2, areaH/2)
		w.stats.CoinFallbacks++
	}
	w.coin = pos
	w.emit(CoinSpawned{At: pos, Fallback: !ok})
}

func (w *World) obstacles() []core.Rect {
	obs := make([]core.Rect, 0, len(w.platforms)+2)
	obs = append(obs, w.leftWall, w.rightWall)
	for _, p := range w.platforms {
		obs = append(obs, p.Rect)
	}
	return obs
}

func (w *World) setCanvas(c Canvas) {
	w.canvas = c.clamped()
	w.leftWall, w.rightWall = walls(w.canvas, w.tuning.WallThickness)
}

// finish moves Playing to GameOver.
func (w *World) finish() {
	if w.state != Playing {
		return
	}
	w.state = GameOver
	w.emit(TimeUp{Coins: w.coins, Ticks: w.tick})
}

// Restart starts a fresh session: player, clock, coins and orb are reset
// and the coin is respawned. Platforms keep moving from where they are.
func (w *World) Restart() {
	w.reset()
	w.emit(Restarted{})
}

func (w *World) reset() {
	t := w.tuning
	w.player.reset(t)
	w.coins = 0
	w.timeRemaining = t.TimeLimit
	w.orbActive = false
	w.orbTimer = t.OrbInterval
	w.tick = 0
	w.stats = Stats{}
	w.state = Playing
	w.respawnCoin()
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// State returns the session phase.
func (w *World) State() State { return w.state }

// Coins returns the coins collected this session.
func (w *World) Coins() int { return w.coins }

// TimeRemaining returns the seconds left on the clock.
func (w *World) TimeRemaining() float64 { return w.timeRemaining }

// Tick returns the number of Playing ticks since the last restart.
func (w *World) Tick() uint64 { return w.tick }

// Stats returns counters since the last restart.
func (w *World) Stats() Stats { return w.stats }

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Tuning returns the constants the world was built with.
func (w *World) Tuning() Tuning { return w.tuning }

// SetPlatformSpeedScale rescales every platform relative to its configured
// speed.
func (w *World) SetPlatformSpeedScale(scale float64) {
	for _, p := range w.platforms {
		p.SetSpeedScale(scale)
	}
}
