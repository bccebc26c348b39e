package sim

import "github.com/vovakirdan/cronus-cash/internal/core"

// Axis selects the coordinate a platform oscillates along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the axis name used in config files.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MovingPlatform is a rectangle bouncing between two bounds on one axis.
type MovingPlatform struct {
	Rect core.Rect
	Vel  core.Vec2
	Min  float64
	Max  float64
	Axis Axis

	// Delta is the displacement applied by the last Update.
	Delta core.Vec2

	base core.Vec2
}

// NewMovingPlatform creates a platform. The velocity component off the
// moving axis is ignored by Update. A start position outside the bounds
// is clamped onto them.
func NewMovingPlatform(rect core.Rect, min, max float64, vel core.Vec2, axis Axis) *MovingPlatform {
	if axis == Vertical {
		rect.Y = core.ClampF(rect.Y, min, max)
	} else {
		rect.X = core.ClampF(rect.X, min, max)
	}
	return &MovingPlatform{
		Rect: rect,
		Vel:  vel,
		Min:  min,
		Max:  max,
		Axis: axis,
		base: vel,
	}
}

// Update moves the platform by its velocity and bounces it off the bounds.
// Reaching past a bound snaps the coordinate onto it and flips the sign.
func (p *MovingPlatform) Update(dt float64) {
	before := core.V(p.Rect.X, p.Rect.Y)

	switch p.Axis {
	case Horizontal:
		p.Rect.X, p.Vel.X = bounce(p.Rect.X+p.Vel.X*dt, p.Vel.X, p.Min, p.Max)
	case Vertical:
		p.Rect.Y, p.Vel.Y = bounce(p.Rect.Y+p.Vel.Y*dt, p.Vel.Y, p.Min, p.Max)
	}

	p.Delta = core.V(p.Rect.X, p.Rect.Y).Sub(before)
}

func bounce(pos, vel, min, max float64) (float64, float64) {
	if pos < min {
		return min, -vel
	}
	if pos > max {
		return max, -vel
	}
	return pos, vel
}

// Coord returns the coordinate on the moving axis.
func (p *MovingPlatform) Coord() float64 {
	if p.Axis == Vertical {
		return p.Rect.Y
	}
	return p.Rect.X
}

// AxisVel returns the velocity component on the moving axis.
func (p *MovingPlatform) AxisVel() float64 {
	if p.Axis == Vertical {
		return p.Vel.Y
	}
	return p.Vel.X
}

// SetSpeedScale rescales the speed relative to the configured velocity,
// keeping the current direction of travel.
func (p *MovingPlatform) SetSpeedScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	p.Vel.X = withSign(p.base.X*scale, p.Vel.X, p.base.X)
	p.Vel.Y = withSign(p.base.Y*scale, p.Vel.Y, p.base.Y)
}

func withSign(mag, sign, fallback float64) float64 {
	if mag < 0 {
		mag = -mag
	}
	if sign == 0 {
		sign = fallback
	}
	if sign < 0 {
		return -mag
	}
	return mag
}
