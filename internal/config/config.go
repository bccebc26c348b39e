// Package config provides YAML-based game configuration loading and
// difficulty management for Cronus Cash.
package config

// CronusConfig contains all tuning for a Cronus Cash session.
type CronusConfig struct {
	Physics     Physics          `yaml:"physics"`
	Jump        Jump             `yaml:"jump"`
	Arena       Arena            `yaml:"arena"`
	Collectible Collectible      `yaml:"collectible"`
	Orb         Orb              `yaml:"orb"`
	Session     Session          `yaml:"session"`
	Platforms   []Platform       `yaml:"platforms"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// Physics defines movement and gravity, in pixels and seconds.
type Physics struct {
	MoveSpeed float64 `yaml:"move_speed"`
	Gravity   float64 `yaml:"gravity"`
	// HorizontalFriction is loaded for compatibility with tuned files but
	// does not decay the wall-jump impulse.
	HorizontalFriction float64 `yaml:"horizontal_friction"`
}

// Jump defines jump assists and limits.
type Jump struct {
	Speed           float64 `yaml:"speed"`
	WallJumpImpulse float64 `yaml:"wall_jump_impulse"`
	CoyoteTime      float64 `yaml:"coyote_time"`
	BufferTime      float64 `yaml:"buffer_time"`
	MaxJumps        int     `yaml:"max_jumps"`
}

// Arena defines the playfield and the player body.
type Arena struct {
	Width         int     `yaml:"width"`  // window frontend canvas
	Height        int     `yaml:"height"` // window frontend canvas
	WallThickness float64 `yaml:"wall_thickness"`
	PlayerRadius  float64 `yaml:"player_radius"`
	SpawnX        float64 `yaml:"spawn_x"`
	SpawnY        float64 `yaml:"spawn_y"`
}

// Collectible defines coin placement.
type Collectible struct {
	Radius       float64 `yaml:"radius"`
	Attempts     int     `yaml:"attempts"`
	Clearance    float64 `yaml:"clearance"`     // extra distance kept from the player
	GroundMargin float64 `yaml:"ground_margin"` // band above the floor coins never use
}

// Orb defines the time orb lifecycle.
type Orb struct {
	Radius      float64 `yaml:"radius"`
	Interval    float64 `yaml:"interval"`
	BonusTime   float64 `yaml:"bonus_time"`
	ChanceOneIn int     `yaml:"chance_one_in"`
	Attempts    int     `yaml:"attempts"`
	Clearance   float64 `yaml:"clearance"`
}

// Session defines the countdown.
type Session struct {
	TimeLimit float64 `yaml:"time_limit"`
}

// Platform describes one oscillating platform.
type Platform struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	VelX float64 `yaml:"vel_x"`
	VelY float64 `yaml:"vel_y"`
	Axis string  `yaml:"axis"` // "horizontal" or "vertical"
}

// Platform axis names.
const (
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
)

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "coins", "time", or "none"
	MaxAt int    `yaml:"max_at"` // coins or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	PlatformSpeedMultiplier float64 `yaml:"platform_speed_multiplier"` // added to platform speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means fixed.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyFixed, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
