// Package audio plays short synthesized cues for game events through the
// system speaker.
package audio

import (
	"github.com/vovakirdan/cronus-cash/internal/core"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueCoin
	CueOrb
	CueJump
	CueWallJump
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueCoin:
		return "coin"
	case CueOrb:
		return "orb"
	case CueJump:
		return "jump"
	case CueWallJump:
		return "wall_jump"
	case CueGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// CueForEvent picks the sound for a simulation event, if it has one.
func CueForEvent(ev core.Event) (Cue, bool) {
	switch ev.(type) {
	case sim.CoinCollected:
		return CueCoin, true
	case sim.OrbCollected:
		return CueOrb, true
	case sim.Jumped:
		return CueJump, true
	case sim.WallJumped:
		return CueWallJump, true
	case sim.TimeUp:
		return CueGameOver, true
	}
	return CueNone, false
}
