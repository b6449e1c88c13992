package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/washer/components"
)

const eps = 1e-3

func TestResolveCirclesPushOut(t *testing.T) {
	p := &components.Player{
		Pos:      components.Vec2{X: 100, Y: 0},
		Vel:      components.Vec2{X: 1, Y: -3},
		Airborne: true,
		Size:     20,
	}
	obstacles := []components.CircleObstacle{{Pos: components.Vec2{X: 105, Y: 0}, Size: 30}}

	n := ResolveCircles(p, obstacles)

	if n != 1 {
		t.Fatalf("contacts = %d, want 1", n)
	}
	if math.Abs(float64(p.Pos.X-80)) > eps || math.Abs(float64(p.Pos.Y)) > eps {
		t.Errorf("Pos = %+v, want (80, 0)", p.Pos)
	}
	if d := Distance(p.Pos, obstacles[0].Pos); math.Abs(float64(d-25)) > eps {
		t.Errorf("distance after resolve = %f, want 25", d)
	}
	if p.Vel.Y != 0 {
		t.Errorf("Vel.Y = %f, want 0", p.Vel.Y)
	}
	if p.Vel.X != 1 {
		t.Errorf("Vel.X = %f, horizontal velocity must be untouched", p.Vel.X)
	}
	if p.Airborne {
		t.Error("player still airborne after contact")
	}
}

func TestResolveCirclesNoContact(t *testing.T) {
	p := &components.Player{
		Pos:      components.Vec2{X: 0, Y: 0},
		Vel:      components.Vec2{X: 0, Y: -2},
		Airborne: true,
		Size:     20,
	}
	// Exactly touching: 10 + 15 = 25 is not an overlap.
	obstacles := []components.CircleObstacle{
		{Pos: components.Vec2{X: 25, Y: 0}, Size: 30},
		{Pos: components.Vec2{X: -100, Y: 40}, Size: 50},
	}

	if n := ResolveCircles(p, obstacles); n != 0 {
		t.Fatalf("contacts = %d, want 0", n)
	}
	if p.Pos != (components.Vec2{}) || p.Vel.Y != -2 || !p.Airborne {
		t.Errorf("player mutated without contact: %+v", p)
	}
}

func TestResolveCirclesConcentric(t *testing.T) {
	p := &components.Player{Pos: components.Vec2{X: 10, Y: 10}, Vel: components.Vec2{Y: -1}, Airborne: true, Size: 20}
	obstacles := []components.CircleObstacle{{Pos: components.Vec2{X: 10, Y: 10}, Size: 30}}

	ResolveCircles(p, obstacles)

	if p.Pos.IsNaN() {
		t.Fatalf("concentric resolve produced NaN: %+v", p.Pos)
	}
	if p.Pos != (components.Vec2{X: 10, Y: 10}) {
		t.Errorf("Pos = %+v, want unchanged", p.Pos)
	}
	if p.Airborne || p.Vel.Y != 0 {
		t.Errorf("concentric contact should still ground the player: %+v", p)
	}
}

func TestResolveCirclesNonPenetration(t *testing.T) {
	obstacle := components.CircleObstacle{Pos: components.Vec2{X: -40, Y: -90}, Size: 40}
	minDist := float32(10 + 20)

	for ang := 0.0; ang < 2*math.Pi; ang += math.Pi / 12 {
		for _, r := range []float32{1, 5, 15, 29} {
			start := components.Vec2{
				X: obstacle.Pos.X + r*float32(math.Cos(ang)),
				Y: obstacle.Pos.Y + r*float32(math.Sin(ang)),
			}
			p := &components.Player{Pos: start, Size: 20}
			ResolveCircles(p, []components.CircleObstacle{obstacle})

			if d := Distance(p.Pos, obstacle.Pos); d < minDist-eps {
				t.Errorf("start %+v: distance after resolve %f < %f", start, d, minDist)
			}
		}
	}
}

func TestResolveCirclesOrderDependent(t *testing.T) {
	a := components.CircleObstacle{Pos: components.Vec2{X: -5, Y: 0}, Size: 20}
	b := components.CircleObstacle{Pos: components.Vec2{X: 0, Y: -8}, Size: 20}

	p1 := &components.Player{Size: 20}
	p2 := &components.Player{Size: 20}
	ResolveCircles(p1, []components.CircleObstacle{a, b})
	ResolveCircles(p2, []components.CircleObstacle{b, a})

	if p1.Pos == p2.Pos {
		t.Errorf("expected different outcomes for different obstacle orders, both %+v", p1.Pos)
	}
	// The last obstacle in each pass is always fully separated.
	if d := Distance(p1.Pos, b.Pos); d < 20-eps {
		t.Errorf("last obstacle still penetrating: %f", d)
	}
	if d := Distance(p2.Pos, a.Pos); d < 20-eps {
		t.Errorf("last obstacle still penetrating: %f", d)
	}
}

func TestClosestPointOnRect(t *testing.T) {
	r := components.RectObstacle{Pos: components.Vec2{X: 0, Y: 0}, Size: 20}

	tests := []struct {
		name string
		pt   components.Vec2
		want components.Vec2
	}{
		{"inside", components.Vec2{X: 3, Y: -4}, components.Vec2{X: 3, Y: -4}},
		{"right face", components.Vec2{X: 30, Y: 2}, components.Vec2{X: 10, Y: 2}},
		{"top face", components.Vec2{X: -1, Y: 25}, components.Vec2{X: -1, Y: 10}},
		{"bottom-left corner", components.Vec2{X: -20, Y: -20}, components.Vec2{X: -10, Y: -10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClosestPointOnRect(tc.pt, r); got != tc.want {
				t.Errorf("ClosestPointOnRect(%+v) = %+v, want %+v", tc.pt, got, tc.want)
			}
		})
	}
}

func TestResolveRectsFaceContact(t *testing.T) {
	// Player falling onto the top face of a square at (0,0) size 20.
	p := &components.Player{
		Pos:      components.Vec2{X: 2, Y: 16},
		Vel:      components.Vec2{X: 0.5, Y: -1.5},
		Airborne: true,
		Size:     20,
	}
	obstacles := []components.RectObstacle{{Pos: components.Vec2{}, Size: 20}}

	if n := ResolveRects(p, obstacles); n != 1 {
		t.Fatalf("contacts = %d, want 1", n)
	}
	if math.Abs(float64(p.Pos.Y-20)) > eps || math.Abs(float64(p.Pos.X-2)) > eps {
		t.Errorf("Pos = %+v, want (2, 20)", p.Pos)
	}
	if p.Vel.Y != 0 || p.Airborne {
		t.Errorf("contact should ground the player: %+v", p)
	}
}

func TestResolveRectsCenterInside(t *testing.T) {
	p := &components.Player{Pos: components.Vec2{}, Vel: components.Vec2{Y: -1}, Airborne: true, Size: 10}
	obstacles := []components.RectObstacle{{Pos: components.Vec2{}, Size: 20}}

	ResolveRects(p, obstacles)

	if p.Pos.IsNaN() {
		t.Fatalf("center-inside resolve produced NaN: %+v", p.Pos)
	}
	if p.Pos != (components.Vec2{}) {
		t.Errorf("Pos = %+v, want unchanged", p.Pos)
	}
	if p.Airborne || p.Vel.Y != 0 {
		t.Errorf("contact should ground the player: %+v", p)
	}
}

func TestResolveRectsNonPenetration(t *testing.T) {
	r := components.RectObstacle{Pos: components.Vec2{X: 50, Y: 10}, Size: 20}
	radius := float32(10)

	// Sample starting centers outside the square but within reach.
	for x := float32(28); x <= 72; x += 2 {
		for y := float32(-12); y <= 32; y += 2 {
			start := components.Vec2{X: x, Y: y}
			if ClosestPointOnRect(start, r) == start {
				continue // inside: degenerate, covered separately
			}
			p := &components.Player{Pos: start, Size: 2 * radius}
			ResolveRects(p, []components.RectObstacle{r})

			d := Distance(p.Pos, ClosestPointOnRect(p.Pos, r))
			if d < radius-eps {
				t.Errorf("start %+v: distance to square after resolve %f < %f", start, d, radius)
			}
		}
	}
}
