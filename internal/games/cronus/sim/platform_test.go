package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/cronus-cash/internal/core"
)

func TestPlatformStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	platforms := DefaultPlatforms()
	for range 20 {
		lo := rng.Float64() * 500
		hi := lo + rng.Float64()*300
		vel := (rng.Float64() - 0.5) * 800
		axis := Horizontal
		v := core.V(vel, 0)
		if rng.Intn(2) == 0 {
			axis = Vertical
			v = core.V(0, vel)
		}
		start := lo + rng.Float64()*(hi-lo)
		platforms = append(platforms, NewMovingPlatform(core.NewRect(start, start, 50, 10), lo, hi, v, axis))
	}

	for i, p := range platforms {
		for step := range 10000 {
			before := p.Coord()
			vel := p.AxisVel()
			dt := rng.Float64() * 0.1

			p.Update(dt)

			next := before + vel*dt
			crossed := next < p.Min || next > p.Max
			flipped := p.AxisVel() == -vel && vel != 0

			if p.Coord() < p.Min || p.Coord() > p.Max {
				t.Fatalf("platform %d step %d: coord %f left [%f, %f]", i, step, p.Coord(), p.Min, p.Max)
			}
			if crossed && vel != 0 && !flipped {
				t.Fatalf("platform %d step %d: crossed a bound without flipping", i, step)
			}
			if !crossed && p.AxisVel() != vel {
				t.Fatalf("platform %d step %d: velocity changed away from a bound", i, step)
			}
			if crossed && p.Coord() != p.Min && p.Coord() != p.Max {
				t.Fatalf("platform %d step %d: crossing should snap onto the bound, got %f", i, step, p.Coord())
			}
		}
	}
}

func TestPlatformBounce(t *testing.T) {
	p := NewMovingPlatform(core.NewRect(590, 450, 240, 16), 200, 600, core.V(80, 0), Horizontal)

	p.Update(0.5) // would reach 630
	if p.Rect.X != 600 {
		t.Errorf("X = %f, expected snap to 600", p.Rect.X)
	}
	if p.Vel.X != -80 {
		t.Errorf("Vel.X = %f, expected -80", p.Vel.X)
	}
	if p.Delta != core.V(10, 0) {
		t.Errorf("Delta = %v, expected (10, 0)", p.Delta)
	}

	p.Update(0.5)
	if p.Rect.X != 560 || p.Delta != core.V(-40, 0) {
		t.Errorf("after reversing: X = %f, Delta = %v", p.Rect.X, p.Delta)
	}
}

func TestPlatformVerticalIgnoresX(t *testing.T) {
	p := NewMovingPlatform(core.NewRect(800, 400, 160, 16), 380, 520, core.V(99, 40), Vertical)
	p.Update(1)

	if p.Rect.X != 800 {
		t.Errorf("vertical platform moved on X: %f", p.Rect.X)
	}
	if p.Rect.Y != 440 {
		t.Errorf("Y = %f, expected 440", p.Rect.Y)
	}
}

func TestPlatformStartClamped(t *testing.T) {
	p := NewMovingPlatform(core.NewRect(50, 0, 10, 10), 100, 200, core.V(10, 0), Horizontal)
	if p.Rect.X != 100 {
		t.Errorf("start X = %f, expected clamp to 100", p.Rect.X)
	}
}

func TestPlatformSpeedScale(t *testing.T) {
	p := NewMovingPlatform(core.NewRect(300, 0, 10, 10), 200, 600, core.V(80, 0), Horizontal)

	p.Vel.X = -80 // travelling left after a bounce
	p.SetSpeedScale(1.5)
	if p.Vel.X != -120 {
		t.Errorf("Vel.X = %f, expected -120", p.Vel.X)
	}

	p.SetSpeedScale(0)
	p.SetSpeedScale(1)
	if math.Abs(p.Vel.X) != 80 {
		t.Errorf("|Vel.X| = %f, expected 80 after restoring the scale", p.Vel.X)
	}
}

func TestAxisString(t *testing.T) {
	if Horizontal.String() != "horizontal" || Vertical.String() != "vertical" {
		t.Error("unexpected axis names")
	}
}
