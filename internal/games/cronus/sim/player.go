package sim

import "github.com/vovakirdan/cronus-cash/internal/core"

// Player is the controllable circle.
type Player struct {
	Pos    core.Vec2
	Vel    core.Vec2 // X is the wall-jump impulse, added on top of input movement
	Radius float64

	JumpCount  int
	Coyote     float64 // seconds of grace left to jump after leaving a surface
	JumpBuffer float64 // seconds a jump press stays queued

	// Contact flags resolved during the last Playing tick.
	OnGround   bool
	OnWall     bool
	TouchLeft  bool
	TouchRight bool
}

// Body returns the player's collision circle.
func (p *Player) Body() core.Circle {
	return core.Circle{Center: p.Pos, Radius: p.Radius}
}

func (p *Player) reset(t Tuning) {
	*p = Player{
		Pos:    t.Spawn,
		Radius: t.PlayerRadius,
	}
}

// integrate applies input movement, the impulse and gravity. Nothing is
// clamped here; collision runs afterwards.
func integrate(p *Player, axis, dt float64, t Tuning) {
	p.Pos.X += axis * t.MoveSpeed * dt
	p.Pos.X += p.Vel.X * dt

	p.Vel.Y += t.Gravity * dt
	p.Pos.Y += p.Vel.Y * dt
}

// land records a resolved landing on the ground or a platform top.
func (p *Player) land(surfaceY float64, t Tuning) {
	p.Pos.Y = surfaceY - p.Radius
	p.Vel = core.Vec2{}
	p.JumpCount = 0
	p.OnGround = true
	p.Coyote = t.CoyoteTime
}
