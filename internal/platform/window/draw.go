package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/cronus-cash/internal/core"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 28, A: 255}
	wallColor       = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	platformColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	platformEdge    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	coinColor       = color.RGBA{R: 255, G: 210, B: 40, A: 255}
	orbColor        = color.RGBA{R: 60, G: 220, B: 255, A: 255}
	orbGlow         = color.RGBA{R: 60, G: 220, B: 255, A: 90}
	playerColor     = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	hudColor        = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	warnColor       = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	dimColor        = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// hudFace is the fixed-width font used for all text.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

const hudMargin = 10

func drawRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawCircle(dst *ebiten.Image, c core.Circle, clr color.Color) {
	vector.FillCircle(dst, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), clr, true)
}

// drawText draws s with its top-left corner at (x, y), scaled by scale.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

// drawTextCentered centers s horizontally on the canvas.
func drawTextCentered(dst *ebiten.Image, s string, canvasW, y, scale float64, clr color.Color) {
	w := text.Advance(s, hudFace) * scale
	drawText(dst, s, (canvasW-w)/2, y, scale, clr)
}

func drawWorld(dst *ebiten.Image, s sim.Snapshot) {
	dst.Fill(backgroundColor)

	for _, w := range s.Walls {
		drawRect(dst, w, wallColor)
	}
	for _, p := range s.Platforms {
		drawRect(dst, p, platformColor)
		vector.StrokeLine(dst, float32(p.X), float32(p.Y), float32(p.Right()), float32(p.Y), 2, platformEdge, false)
	}

	drawCircle(dst, s.Coin, coinColor)
	if s.OrbActive {
		vector.StrokeCircle(dst, float32(s.Orb.Center.X), float32(s.Orb.Center.Y), float32(s.Orb.Radius+6), 3, orbGlow, true)
		drawCircle(dst, s.Orb, orbColor)
	}
	drawCircle(dst, s.Player, playerColor)
}

func drawHUD(dst *ebiten.Image, s sim.Snapshot, paused bool) {
	drawText(dst, fmt.Sprintf("Coins: %d", s.Coins), hudMargin+s.Walls[0].W, hudMargin, 2, hudColor)

	clock := s.Clock()
	clr := color.Color(hudColor)
	if s.TimeRemaining < 10 {
		clr = warnColor
	}
	x := s.Canvas.W - s.Walls[1].W - hudMargin - text.Advance(clock, hudFace)*2
	drawText(dst, clock, x, hudMargin, 2, clr)

	if paused {
		drawTextCentered(dst, "PAUSED", s.Canvas.W, s.Canvas.H/2-13, 3, hudColor)
	}
}

func drawGameOver(dst *ebiten.Image, s sim.Snapshot) {
	dst.Fill(backgroundColor)
	mid := s.Canvas.H / 2
	drawTextCentered(dst, "GOOD JOB!", s.Canvas.W, mid-80, 4, coinColor)
	drawTextCentered(dst, fmt.Sprintf("Coins: %d", s.Coins), s.Canvas.W, mid-10, 3, hudColor)
	drawTextCentered(dst, "Press R to restart", s.Canvas.W, mid+50, 2, dimColor)
}
