package sim

import (
	"math"

	"github.com/vovakirdan/cronus-cash/internal/core"
)

// RNG is the random source used for pickup placement and orb rolls.
// *math/rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// SpawnRequest describes where a round pickup may appear.
type SpawnRequest struct {
	Radius    float64
	Bounds    core.Rect // region the center is drawn from
	Obstacles []core.Rect
	Avoid     core.Vec2 // usually the player center
	MinDist   float64
	Attempts  int
}

// Valid reports whether a pickup centered at p clears every obstacle and
// keeps MinDist from Avoid.
func (r SpawnRequest) Valid(p core.Vec2) bool {
	body := core.Circle{Center: p, Radius: r.Radius}
	for _, o := range r.Obstacles {
		if body.IntersectsRect(o) {
			return false
		}
	}
	return p.Dist(r.Avoid) >= r.MinDist
}

// Sample draws up to Attempts uniform positions inside Bounds and returns
// the first valid one. ok is false when the budget runs out.
func Sample(rng RNG, req SpawnRequest) (p core.Vec2, ok bool) {
	w := math.Max(req.Bounds.W, 0)
	h := math.Max(req.Bounds.H, 0)

	for range req.Attempts {
		p = core.V(
			req.Bounds.X+rng.Float64()*w,
			req.Bounds.Y+rng.Float64()*h,
		)
		if req.Valid(p) {
			return p, true
		}
	}
	return core.Vec2{}, false
}

// boundsInset returns the rectangle [r, w-r] x [r, h-r].
func boundsInset(w, h, r float64) core.Rect {
	return core.NewRect(r, r, w-2*r, h-2*r)
}
