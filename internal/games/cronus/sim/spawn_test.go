package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/cronus-cash/internal/core"
)

func randomLayout(rng *rand.Rand) (Canvas, []core.Rect) {
	c := Canvas{W: 200 + rng.Float64()*800, H: 200 + rng.Float64()*600}
	left, right := walls(c, 20)
	obs := []core.Rect{left, right}
	for range rng.Intn(7) {
		obs = append(obs, core.NewRect(
			rng.Float64()*c.W,
			rng.Float64()*c.H,
			20+rng.Float64()*200,
			8+rng.Float64()*30,
		))
	}
	return c, obs
}

func TestSampleNeverOverlapsObstacles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const trials = 2000
	found := 0
	for trial := range trials {
		c, obs := randomLayout(rng)
		radius := 4 + rng.Float64()*12
		req := SpawnRequest{
			Radius:    radius,
			Bounds:    boundsInset(c.W, c.H, radius),
			Obstacles: obs,
			Avoid:     core.V(rng.Float64()*c.W, rng.Float64()*c.H),
			MinDist:   20 + radius + 20,
			Attempts:  500,
		}

		p, ok := Sample(rng, req)
		if !ok {
			continue
		}
		found++

		body := core.Circle{Center: p, Radius: radius}
		for i, o := range obs {
			if body.IntersectsRect(o) {
				t.Fatalf("trial %d: %v overlaps obstacle %d %+v", trial, p, i, o)
			}
		}
		if d := p.Dist(req.Avoid); d < req.MinDist {
			t.Fatalf("trial %d: distance %f below %f", trial, d, req.MinDist)
		}
		if p.X < req.Bounds.X || p.X > req.Bounds.Right() || p.Y < req.Bounds.Y || p.Y > req.Bounds.Bottom() {
			t.Fatalf("trial %d: %v outside bounds %+v", trial, p, req.Bounds)
		}
	}

	if found < trials*9/10 {
		t.Errorf("only %d of %d layouts produced a position", found, trials)
	}
}

type countingRNG struct {
	floats int
}

func (c *countingRNG) Float64() float64 { c.floats++; return 0.5 }
func (c *countingRNG) Intn(int) int { return 0 }

func TestSampleExhaustsBudget(t *testing.T) {
	rng := &countingRNG{}
	req := SpawnRequest{
		Radius:    8,
		Bounds:    core.NewRect(8, 8, 784, 534),
		Obstacles: []core.Rect{core.NewRect(0, 0, 800, 600)},
		Attempts:  200,
	}

	if _, ok := Sample(rng, req); ok {
		t.Fatal("a fully blocked area should exhaust the budget")
	}
	if rng.floats != 2*req.Attempts {
		t.Errorf("drew %d floats, expected %d", rng.floats, 2*req.Attempts)
	}
}

func TestSampleZeroAttempts(t *testing.T) {
	if _, ok := Sample(&countingRNG{}, SpawnRequest{Radius: 1, Bounds: core.NewRect(0, 0, 10, 10)}); ok {
		t.Error("zero attempts should fail")
	}
}

func TestSampleDegenerateBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	req := SpawnRequest{
		Radius:   8,
		Bounds:   boundsInset(10, 10, 8), // negative width and height
		Attempts: 10,
	}
	p, ok := Sample(rng, req)
	if !ok {
		t.Fatal("no obstacles and no distance limit should succeed")
	}
	if p != core.V(8, 8) {
		t.Errorf("collapsed bounds should pin the draw to the origin, got %v", p)
	}
}

func TestSpawnRequestValid(t *testing.T) {
	req := SpawnRequest{
		Radius:    8,
		Obstacles: []core.Rect{core.NewRect(100, 100, 50, 10)},
		Avoid:     core.V(400, 300),
		MinDist:   48,
	}

	tests := []struct {
		name string
		p    core.Vec2
		want bool
	}{
		{"clear", core.V(200, 200), true},
		{"on obstacle", core.V(120, 105), false},
		{"touching obstacle", core.V(120, 118), false},
		{"too close to player", core.V(400, 340), false},
		{"exactly at min distance", core.V(400, 348), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := req.Valid(tc.p); got != tc.want {
				t.Errorf("Valid(%v) = %v, expected %v", tc.p, got, tc.want)
			}
		})
	}
}
