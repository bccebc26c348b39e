package sim

import "github.com/vovakirdan/cronus-cash/internal/core"

// landingTolerance lets a player whose bottom was up to a pixel below a
// platform top last frame still land on it.
const landingTolerance = 1.0

// wallJumpClearance moves the player just clear of the wall it jumped off.
const wallJumpClearance = 0.5

// resolveGround snaps the player onto the floor line. Airborne, the coyote
// window runs down instead.
func resolveGround(p *Player, canvasH, dt float64, t Tuning) {
	if p.Pos.Y >= canvasH-p.Radius {
		p.land(canvasH, t)
		return
	}
	p.OnGround = false
	p.Coyote = max(p.Coyote-dt, 0)
}

// platformContact is how a platform collision was resolved.
type platformContact int

const (
	contactNone platformContact = iota
	contactLanding
	contactSide
	contactInside
)

// resolvePlatforms resolves each overlapping platform in slice order.
// Corrections accumulate, so a later platform sees the position left by an
// earlier one. It returns the index of the last platform landed on, or -1.
func resolvePlatforms(p *Player, prevY float64, platforms []*MovingPlatform, t Tuning) int {
	landed := -1
	for i, plat := range platforms {
		switch resolvePlatform(p, prevY, plat, t) {
		case contactLanding, contactInside:
			landed = i
		}
	}
	return landed
}

func resolvePlatform(p *Player, prevY float64, plat *MovingPlatform, t Tuning) platformContact {
	r := plat.Rect
	if !p.Body().IntersectsRect(r) {
		return contactNone
	}

	top := r.Y
	if prevY+p.Radius <= top+landingTolerance && p.Pos.Y+p.Radius >= top {
		p.land(top, t)
		p.Pos.X += plat.Delta.X
		return contactLanding
	}

	switch {
	case p.Pos.X < r.X:
		p.Pos.X = r.X - p.Radius
		p.Vel.X = 0
		return contactSide
	case p.Pos.X > r.Right():
		p.Pos.X = r.Right() + p.Radius
		p.Vel.X = 0
		return contactSide
	}

	// Center inside the horizontal span without a downward crossing.
	p.land(top, t)
	return contactInside
}

// detectWalls sets the wall contact flags without moving the player.
func detectWalls(p *Player, left, right core.Rect) {
	body := p.Body()
	p.TouchLeft = body.IntersectsRect(left)
	p.TouchRight = body.IntersectsRect(right)
	p.OnWall = (p.TouchLeft || p.TouchRight) && !p.OnGround
}

// correctWallPenetration pushes the player out of any wall it still
// overlaps and cancels the impulse.
func correctWallPenetration(p *Player, left, right core.Rect) {
	if p.Body().IntersectsRect(left) {
		p.Pos.X = left.Right() + p.Radius
		p.Vel.X = 0
	}
	if p.Body().IntersectsRect(right) {
		p.Pos.X = right.X - p.Radius
		p.Vel.X = 0
	}
}

// clampHorizontal keeps the whole circle on the canvas. On a canvas
// narrower than the player the left edge wins.
func clampHorizontal(p *Player, canvasW float64) {
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, canvasW-p.Radius)
}
