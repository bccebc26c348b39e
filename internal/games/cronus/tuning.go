package cronus

import (
	"github.com/vovakirdan/cronus-cash/internal/config"
	"github.com/vovakirdan/cronus-cash/internal/core"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"
)

// TuningFromConfig converts YAML tuning into simulation constants.
func TuningFromConfig(cfg config.CronusConfig) sim.Tuning {
	return sim.Tuning{
		MoveSpeed:          cfg.Physics.MoveSpeed,
		Gravity:            cfg.Physics.Gravity,
		HorizontalFriction: cfg.Physics.HorizontalFriction,

		JumpSpeed:       cfg.Jump.Speed,
		WallJumpImpulse: cfg.Jump.WallJumpImpulse,
		CoyoteTime:      cfg.Jump.CoyoteTime,
		JumpBufferTime:  cfg.Jump.BufferTime,
		MaxJumps:        cfg.Jump.MaxJumps,

		PlayerRadius:  cfg.Arena.PlayerRadius,
		WallThickness: cfg.Arena.WallThickness,
		Spawn:         core.V(cfg.Arena.SpawnX, cfg.Arena.SpawnY),

		CoinRadius:       cfg.Collectible.Radius,
		CoinAttempts:     cfg.Collectible.Attempts,
		CoinClearance:    cfg.Collectible.Clearance,
		CoinGroundMargin: cfg.Collectible.GroundMargin,

		OrbRadius:      cfg.Orb.Radius,
		OrbInterval:    cfg.Orb.Interval,
		OrbBonus:       cfg.Orb.BonusTime,
		OrbChanceOneIn: cfg.Orb.ChanceOneIn,
		OrbAttempts:    cfg.Orb.Attempts,
		OrbClearance:   cfg.Orb.Clearance,

		TimeLimit: cfg.Session.TimeLimit,
	}
}

// PlatformsFromConfig builds fresh platforms from the configured layout.
func PlatformsFromConfig(cfg config.CronusConfig) []*sim.MovingPlatform {
	plats := make([]*sim.MovingPlatform, 0, len(cfg.Platforms))
	for _, p := range cfg.Platforms {
		axis := sim.Horizontal
		if p.Axis == config.AxisVertical {
			axis = sim.Vertical
		}
		plats = append(plats, sim.NewMovingPlatform(
			core.NewRect(p.X, p.Y, p.W, p.H),
			p.Min, p.Max,
			core.V(p.VelX, p.VelY),
			axis,
		))
	}
	return plats
}

// NewWorld creates a session from configuration.
func NewWorld(cfg config.CronusConfig, rng sim.RNG, canvas sim.Canvas) *sim.World {
	return sim.NewWorld(TuningFromConfig(cfg), PlatformsFromConfig(cfg), rng, canvas)
}

// ArenaCanvas returns the configured arena size.
func ArenaCanvas(cfg config.CronusConfig) sim.Canvas {
	return sim.Canvas{W: float64(cfg.Arena.Width), H: float64(cfg.Arena.Height)}
}
