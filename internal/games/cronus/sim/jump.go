package sim

import "github.com/vovakirdan/cronus-cash/internal/core"

// jumpKind describes the jump performed this tick.
type jumpKind int

const (
	noJump jumpKind = iota
	groundJump
	airJump
	wallJumpLeft  // off the left wall, pushed right
	wallJumpRight // off the right wall, pushed left
)

// bufferJump queues a press for JumpBufferTime seconds.
func bufferJump(p *Player, pressed bool, dt float64, t Tuning) {
	if pressed {
		p.JumpBuffer = t.JumpBufferTime
		return
	}
	p.JumpBuffer = max(p.JumpBuffer-dt, 0)
}

// canJump reports whether a queued jump may fire.
func canJump(p *Player, t Tuning) bool {
	return p.JumpCount < t.MaxJumps || p.OnWall || p.Coyote > 0
}

// tryJump fires a buffered jump when eligible. A wall jump always leaves
// one jump used so a follow-up air jump stays available.
func tryJump(p *Player, left, right core.Rect, t Tuning) jumpKind {
	if p.JumpBuffer <= 0 || !canJump(p, t) {
		return noJump
	}

	kind := airJump
	if p.OnGround || p.Coyote > 0 {
		kind = groundJump
	}

	p.Vel.Y = -t.JumpSpeed
	switch {
	case p.OnWall && p.TouchLeft:
		p.JumpCount = 1
		p.Vel.X = t.WallJumpImpulse
		p.Pos.X = left.Right() + p.Radius + wallJumpClearance
		kind = wallJumpLeft
	case p.OnWall:
		p.JumpCount = 1
		p.Vel.X = -t.WallJumpImpulse
		p.Pos.X = right.X - p.Radius - wallJumpClearance
		kind = wallJumpRight
	default:
		p.JumpCount = min(p.JumpCount+1, t.MaxJumps)
	}

	p.JumpBuffer = 0
	p.Coyote = 0
	return kind
}
