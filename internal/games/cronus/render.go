package cronus

import (
	"fmt"

	"github.com/vovakirdan/cronus-cash/internal/core"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"
)

// Visual characters for rendering
const (
	WallChar     = '█'
	PlatformChar = '▀'
	PlayerChar   = '█'
	CoinChar     = '$'
	OrbChar      = '◆'
)

const hudRows = 1

// Smallest grid that still shows the arena recognisably.
const (
	minScreenW = 20
	minScreenH = 8
)

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	snap := g.world.Snapshot()
	if snap.State == sim.GameOver {
		renderGameOver(dst, snap)
		return
	}

	g.renderArena(dst, snap)
	renderHUD(dst, snap)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - press P ", core.ColorBrightWhite)
	}
}

func (g *Game) renderArena(dst *core.Screen, snap sim.Snapshot) {
	for _, p := range snap.Platforms {
		g.fillRect(dst, p, PlatformChar, core.ColorWhite)
	}
	for _, w := range snap.Walls {
		g.fillRect(dst, w, WallChar, core.ColorGray)
	}

	if col, row, ok := g.cellAt(snap.Coin.Center); ok {
		dst.SetColored(col, row, CoinChar, core.ColorBrightYellow)
	}
	if snap.OrbActive {
		if col, row, ok := g.cellAt(snap.Orb.Center); ok {
			dst.SetColored(col, row, OrbChar, core.ColorBrightCyan)
		}
	}

	g.fillCircle(dst, snap.Player, PlayerChar, core.ColorBrightRed)
}

// fillRect paints every cell that overlaps r.
func (g *Game) fillRect(dst *core.Screen, r core.Rect, ch rune, color core.Color) {
	c0, c1 := span(r.X, r.Right(), g.cellW)
	r0, r1 := span(r.Y, r.Bottom(), g.cellH)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := core.NewRect(float64(col)*g.cellW, float64(row)*g.cellH, g.cellW, g.cellH)
			if cell.Intersects(r) {
				dst.SetColored(col, row+hudRows, ch, color)
			}
		}
	}
}

// fillCircle paints cells whose center is inside c, plus the cell holding
// the circle's center so small circles never vanish.
func (g *Game) fillCircle(dst *core.Screen, c core.Circle, ch rune, color core.Color) {
	c0, c1 := span(c.Center.X-c.Radius, c.Center.X+c.Radius, g.cellW)
	r0, r1 := span(c.Center.Y-c.Radius, c.Center.Y+c.Radius, g.cellH)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			center := core.V((float64(col)+0.5)*g.cellW, (float64(row)+0.5)*g.cellH)
			if center.Dist(c.Center) <= c.Radius {
				dst.SetColored(col, row+hudRows, ch, color)
			}
		}
	}
	if col, row, ok := g.cellAt(c.Center); ok {
		dst.SetColored(col, row, ch, color)
	}
}

// cellAt returns the screen cell holding pixel p.
func (g *Game) cellAt(p core.Vec2) (col, row int, ok bool) {
	if g.cellW <= 0 || g.cellH <= 0 || p.X < 0 || p.Y < 0 {
		return 0, 0, false
	}
	return int(p.X / g.cellW), int(p.Y/g.cellH) + hudRows, true
}

// span returns the first and last cell index covering [lo, hi].
func span(lo, hi, size float64) (int, int) {
	if size <= 0 {
		return 0, -1
	}
	first := int(lo / size)
	last := int(hi / size)
	return max(first, 0), last
}

func renderHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Coins: %d", snap.Coins), core.ColorBrightWhite)

	clock := snap.Clock()
	color := core.ColorBrightWhite
	if snap.TimeRemaining < 10 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(clock)-1, 0, clock, color)

	if snap.OrbActive {
		dst.DrawTextCentered(0, "◆ time orb", core.ColorBrightCyan)
	}
}

func renderGameOver(dst *core.Screen, snap sim.Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "GOOD JOB!", core.ColorBrightYellow)
	dst.DrawTextCentered(mid, fmt.Sprintf("Coins: %d", snap.Coins), core.ColorBrightWhite)
	dst.DrawTextCentered(mid+2, "Press R to restart", core.ColorGray)
}
