package tui

import (
	"time"

	"github.com/vovakirdan/cronus-cash/internal/core"
)

// DefaultHoldWindow covers the gap between a key press and the terminal's
// first auto-repeat on most systems.
const DefaultHoldWindow = 550 * time.Millisecond

// HoldTracker emulates held keys. Terminals only deliver presses, so an
// action counts as held until window has passed since its last press or
// repeat. Pressing one direction releases the opposite one.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A window of zero disables holding.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	default:
		return
	}
	h.last[a] = now
}

// Apply marks every action still inside its window as held in frame and
// forgets the rest.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.last {
		if now.Sub(at) < h.window {
			frame.Hold(a)
		} else {
			delete(h.last, a)
		}
	}
}

// Release forgets every held action.
func (h *HoldTracker) Release() {
	clear(h.last)
}
