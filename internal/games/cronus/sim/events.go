package sim

import "github.com/vovakirdan/cronus-cash/internal/core"

// Event is something that happened during a Step. Hosts log events and
// map them to sound cues; the simulation never acts on them.
type Event = core.Event

// CoinCollected is emitted when the player touches the coin.
type CoinCollected struct {
	Coins int
	At    core.Vec2
}

func (CoinCollected) Kind() string { return "coin_collected" }
func (e CoinCollected) Fields() []any { return []any{"coins", e.Coins, "x", e.At.X, "y", e.At.Y} }

// CoinSpawned is emitted when the coin is placed. Fallback is set when the
// sampler ran out of attempts and the coin went to the fixed position.
type CoinSpawned struct {
	At       core.Vec2
	Fallback bool
}

func (CoinSpawned) Kind() string { return "coin_spawned" }
func (e CoinSpawned) Fields() []any {
	return []any{"x", e.At.X, "y", e.At.Y, "fallback", e.Fallback}
}

// OrbSpawned is emitted when a time orb appears.
type OrbSpawned struct {
	At core.Vec2
}

func (OrbSpawned) Kind() string { return "orb_spawned" }
func (e OrbSpawned) Fields() []any { return []any{"x", e.At.X, "y", e.At.Y} }

// OrbCollected is emitted when the player takes the time orb.
type OrbCollected struct {
	Bonus         float64 // seconds actually added after capping
	TimeRemaining float64
}

func (OrbCollected) Kind() string { return "orb_collected" }
func (e OrbCollected) Fields() []any {
	return []any{"bonus", e.Bonus, "time_remaining", e.TimeRemaining}
}

// Jumped is emitted for ground, coyote and air jumps.
type Jumped struct {
	JumpCount int
	Air       bool
}

func (Jumped) Kind() string { return "jumped" }
func (e Jumped) Fields() []any { return []any{"jump_count", e.JumpCount, "air", e.Air} }

// WallJumped is emitted for a jump off a side wall.
type WallJumped struct {
	FromLeft bool
}

func (WallJumped) Kind() string { return "wall_jumped" }
func (e WallJumped) Fields() []any { return []any{"from_left", e.FromLeft} }

// Landed is emitted when the player touches down after being airborne.
// Platform is the platform index, or -1 for the floor.
type Landed struct {
	Platform int
}

func (Landed) Kind() string { return "landed" }
func (e Landed) Fields() []any { return []any{"platform", e.Platform} }

// TimeUp is emitted on the tick the clock runs out.
type TimeUp struct {
	Coins int
	Ticks uint64
}

func (TimeUp) Kind() string { return "time_up" }
func (e TimeUp) Fields() []any { return []any{"coins", e.Coins, "ticks", e.Ticks} }

// Restarted is emitted when a finished session starts over.
type Restarted struct{}

func (Restarted) Kind() string { return "restarted" }
func (Restarted) Fields() []any { return nil }
