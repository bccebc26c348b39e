package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"
)

// keyState reports keyboard state for the current tick.
type keyState interface {
	Pressed(ebiten.Key) bool
	JustPressed(ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var (
	leftKeys    = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys   = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	pauseKeys   = []ebiten.Key{ebiten.KeyP}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape}
)

func anyPressed(ks keyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if ks.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(ks keyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if ks.JustPressed(k) {
			return true
		}
	}
	return false
}

// controls is one tick of decoded input.
type controls struct {
	sim   sim.Input
	pause bool
	quit  bool
}

// readControls maps keys to simulation input. Movement is level
// triggered; jump, restart, pause and quit fire on the press.
func readControls(ks keyState) controls {
	return controls{
		sim: sim.Input{
			Left:    anyPressed(ks, leftKeys),
			Right:   anyPressed(ks, rightKeys),
			Jump:    anyJustPressed(ks, jumpKeys),
			Restart: anyJustPressed(ks, restartKeys),
		},
		pause: anyJustPressed(ks, pauseKeys),
		quit:  anyJustPressed(ks, quitKeys),
	}
}
