package cronus

import "github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"

// Autopilot is a scripted input policy used by the headless runner: run
// toward the coin and jump when it is above or when pinned against a wall.
type Autopilot struct {
	// Horizontal distance treated as "under the coin".
	Deadzone float64
	// Vertical gap that makes the coin count as above the player.
	Reach float64

	pressed bool
}

// NewAutopilot returns a policy with defaults suited to the stock arena.
func NewAutopilot() *Autopilot {
	return &Autopilot{Deadzone: 6, Reach: 24}
}

// Next picks the input for the coming tick.
func (a *Autopilot) Next(s sim.Snapshot) sim.Input {
	if s.State == sim.GameOver {
		a.pressed = false
		return sim.Input{Restart: true}
	}

	var in sim.Input
	dx := s.Coin.Center.X - s.Player.Center.X
	switch {
	case dx > a.Deadzone:
		in.Right = true
	case dx < -a.Deadzone:
		in.Left = true
	}

	above := s.Coin.Center.Y < s.Player.Center.Y-a.Reach
	falling := s.PlayerVel.Y > 0
	want := s.OnWall || (above && (s.OnGround || falling))

	// Jump is an edge, so release for a tick between presses.
	in.Jump = want && !a.pressed
	a.pressed = in.Jump
	return in
}
