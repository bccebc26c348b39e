// Package sim is the frame-driven simulation core of Cronus Cash: a circle
// that runs, jumps and wall-jumps around an arena of moving platforms,
// collecting coins against a countdown.
//
// The package has no rendering, input polling or clock of its own. Hosts
// call World.Step once per frame with the elapsed seconds, the input state
// and the current canvas size, then draw World.Snapshot.
package sim

import "github.com/vovakirdan/cronus-cash/internal/core"

// Tuning holds every constant the simulation reads. Units are pixels and
// seconds.
type Tuning struct {
	MoveSpeed float64
	Gravity   float64
	// HorizontalFriction is carried but not applied: the wall-jump impulse
	// only stops on landing or wall contact.
	HorizontalFriction float64

	JumpSpeed       float64
	WallJumpImpulse float64
	CoyoteTime      float64
	JumpBufferTime  float64
	MaxJumps        int

	PlayerRadius  float64
	WallThickness float64
	Spawn         core.Vec2

	CoinRadius       float64
	CoinAttempts     int
	CoinClearance    float64
	CoinGroundMargin float64

	OrbRadius      float64
	OrbInterval    float64
	OrbBonus       float64
	OrbChanceOneIn int
	OrbAttempts    int
	OrbClearance   float64

	TimeLimit float64
}

// DefaultTuning returns the stock game feel.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:          200,
		Gravity:            1500,
		HorizontalFriction: 8,

		JumpSpeed:       600,
		WallJumpImpulse: 300,
		CoyoteTime:      0.12,
		JumpBufferTime:  0.12,
		MaxJumps:        2,

		PlayerRadius:  20,
		WallThickness: 20,
		Spawn:         core.V(100, 100),

		CoinRadius:       8,
		CoinAttempts:     500,
		CoinClearance:    20,
		CoinGroundMargin: 50,

		OrbRadius:      10,
		OrbInterval:    15,
		OrbBonus:       30,
		OrbChanceOneIn: 3,
		OrbAttempts:    200,
		OrbClearance:   30,

		TimeLimit: 120,
	}
}

// DefaultPlatforms returns the stock four-platform layout.
func DefaultPlatforms() []*MovingPlatform {
	return []*MovingPlatform{
		NewMovingPlatform(core.NewRect(200, 450, 240, 16), 200, 600, core.V(80, 0), Horizontal),
		NewMovingPlatform(core.NewRect(520, 350, 140, 16), 300, 520, core.V(-60, 0), Horizontal),
		NewMovingPlatform(core.NewRect(800, 400, 160, 16), 380, 520, core.V(0, 40), Vertical),
		NewMovingPlatform(core.NewRect(100, 250, 120, 16), 100, 600, core.V(50, 0), Horizontal),
	}
}

// Canvas is the drawable area in pixels. It may change between frames.
type Canvas struct {
	W, H float64
}

// clamped returns the canvas with negative sizes raised to zero.
func (c Canvas) clamped() Canvas {
	if c.W < 0 {
		c.W = 0
	}
	if c.H < 0 {
		c.H = 0
	}
	return c
}

// walls derives the two side walls for the canvas.
func walls(c Canvas, thickness float64) (left, right core.Rect) {
	if thickness < 0 {
		thickness = 0
	}
	left = core.NewRect(0, 0, thickness, c.H)
	right = core.NewRect(c.W-thickness, 0, thickness, c.H)
	return left, right
}

// Input is the control state for one frame.
type Input struct {
	Left    bool // held
	Right   bool // held
	Jump    bool // pressed this frame
	Restart bool // pressed this frame
}

// Axis returns the horizontal direction: -1, 0 or 1.
func (in Input) Axis() float64 {
	var axis float64
	if in.Left {
		axis--
	}
	if in.Right {
		axis++
	}
	return axis
}
