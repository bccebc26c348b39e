package config

import (
	_ "embed"
)

//go:embed defaults/cronus.yaml
var defaultCronusYAML []byte

// DefaultCronusConfig returns the built-in tuning: an 800x600 arena,
// a two-minute clock and four moving platforms.
func DefaultCronusConfig() CronusConfig {
	return CronusConfig{
		Physics: Physics{
			MoveSpeed:          200,
			Gravity:            1500,
			HorizontalFriction: 8,
		},
		Jump: Jump{
			Speed:           600,
			WallJumpImpulse: 300,
			CoyoteTime:      0.12,
			BufferTime:      0.12,
			MaxJumps:        2,
		},
		Arena: Arena{
			Width:         800,
			Height:        600,
			WallThickness: 20,
			PlayerRadius:  20,
			SpawnX:        100,
			SpawnY:        100,
		},
		Collectible: Collectible{
			Radius:       8,
			Attempts:     500,
			Clearance:    20,
			GroundMargin: 50,
		},
		Orb: Orb{
			Radius:      10,
			Interval:    15,
			BonusTime:   30,
			ChanceOneIn: 3,
			Attempts:    200,
			Clearance:   30,
		},
		Session: Session{
			TimeLimit: 120,
		},
		Platforms: []Platform{
			{X: 200, Y: 450, W: 240, H: 16, Min: 200, Max: 600, VelX: 80, Axis: AxisHorizontal},
			{X: 520, Y: 350, W: 140, H: 16, Min: 300, Max: 520, VelX: -60, Axis: AxisHorizontal},
			{X: 800, Y: 400, W: 160, H: 16, Min: 380, Max: 520, VelY: 40, Axis: AxisVertical},
			{X: 100, Y: 250, W: 120, H: 16, Min: 100, Max: 600, VelX: 50, Axis: AxisHorizontal},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "coins",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				PlatformSpeedMultiplier: 1.0,
			},
		},
	}
}
