package sim

import (
	"fmt"

	"github.com/vovakirdan/cronus-cash/internal/core"
)

// Snapshot is everything a frontend needs to draw one frame.
type Snapshot struct {
	Tick   uint64
	State  State
	Canvas Canvas

	Player    core.Circle
	PlayerVel core.Vec2
	JumpCount int
	OnGround  bool
	OnWall    bool

	Walls     [2]core.Rect
	Platforms []core.Rect

	Coin      core.Circle
	Orb       core.Circle
	OrbActive bool

	Coins         int
	TimeRemaining float64
}

// Clock formats the remaining time as mm:ss, truncating fractions.
func (s Snapshot) Clock() string {
	return FormatClock(s.TimeRemaining)
}

// FormatClock formats seconds as mm:ss.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Snapshot returns the current frame's drawable state.
func (w *World) Snapshot() Snapshot {
	plats := make([]core.Rect, len(w.platforms))
	for i, p := range w.platforms {
		plats[i] = p.Rect
	}

	return Snapshot{
		Tick:          w.tick,
		State:         w.state,
		Canvas:        w.canvas,
		Player:        w.player.Body(),
		PlayerVel:     w.player.Vel,
		JumpCount:     w.player.JumpCount,
		OnGround:      w.player.OnGround,
		OnWall:        w.player.OnWall,
		Walls:         [2]core.Rect{w.leftWall, w.rightWall},
		Platforms:     plats,
		Coin:          core.Circle{Center: w.coin, Radius: w.tuning.CoinRadius},
		Orb:           core.Circle{Center: w.orb, Radius: w.tuning.OrbRadius},
		OrbActive:     w.orbActive,
		Coins:         w.coins,
		TimeRemaining: w.timeRemaining,
	}
}
