package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names reported by LoadCronus when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadCronus loads Cronus Cash configuration and reports where it came from.
// Search order: customPath -> ~/.cronus/configs/cronus.yaml -> ./configs/cronus.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. A custom path that cannot be read, parsed or validated is an
// error; broken files found on the search path are skipped.
func LoadCronus(customPath string) (CronusConfig, string, error) {
	return loadCronus(customPath, searchPaths())
}

func loadCronus(customPath string, paths []string) (CronusConfig, string, error) {
	if customPath != "" {
		cfg, err := readCronus(customPath)
		if err != nil {
			return DefaultCronusConfig(), "", err
		}
		return cfg, customPath, nil
	}

	for _, p := range paths {
		if cfg, err := readCronus(p); err == nil {
			return cfg, p, nil
		}
	}

	cfg := DefaultCronusConfig()
	if err := yaml.Unmarshal(defaultCronusYAML, &cfg); err != nil {
		return DefaultCronusConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func readCronus(path string) (CronusConfig, error) {
	cfg := DefaultCronusConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath("cronus.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "cronus.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cronus", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg CronusConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate reports the first problem that would make the simulation
// misbehave (division by zero, empty sampling budgets, inverted bounds).
func (c CronusConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.MoveSpeed >= 0, "physics.move_speed must be >= 0")
	check(c.Jump.Speed > 0, "jump.speed must be > 0")
	check(c.Jump.WallJumpImpulse >= 0, "jump.wall_jump_impulse must be >= 0")
	check(c.Jump.CoyoteTime >= 0, "jump.coyote_time must be >= 0")
	check(c.Jump.BufferTime >= 0, "jump.buffer_time must be >= 0")
	check(c.Jump.MaxJumps >= 1, "jump.max_jumps must be >= 1")
	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena size must be positive")
	check(c.Arena.WallThickness >= 0, "arena.wall_thickness must be >= 0")
	check(c.Arena.PlayerRadius > 0, "arena.player_radius must be > 0")
	check(c.Collectible.Radius > 0, "collectible.radius must be > 0")
	check(c.Collectible.Attempts > 0, "collectible.attempts must be > 0")
	check(c.Collectible.GroundMargin >= 0, "collectible.ground_margin must be >= 0")
	check(c.Orb.Radius > 0, "orb.radius must be > 0")
	check(c.Orb.Interval > 0, "orb.interval must be > 0")
	check(c.Orb.BonusTime >= 0, "orb.bonus_time must be >= 0")
	check(c.Orb.ChanceOneIn >= 1, "orb.chance_one_in must be >= 1")
	check(c.Orb.Attempts > 0, "orb.attempts must be > 0")
	check(c.Session.TimeLimit > 0, "session.time_limit must be > 0")

	for i, p := range c.Platforms {
		check(p.W > 0 && p.H > 0, "platforms[%d]: size must be positive", i)
		check(p.Min <= p.Max, "platforms[%d]: min %.0f > max %.0f", i, p.Min, p.Max)
		check(p.Axis == AxisHorizontal || p.Axis == AxisVertical,
			"platforms[%d]: unknown axis %q", i, p.Axis)
	}

	switch c.Difficulty.Progression.Type {
	case "coins", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not coins, time or none",
			c.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyCronusPreset modifies the config based on a difficulty preset.
func ApplyCronusPreset(cfg *CronusConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "coins"
	}

	// Easy keeps a longer clock
	if preset == DifficultyEasy {
		cfg.Session.TimeLimit += 30
	}
}
