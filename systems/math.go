package systems

import (
	"math"

	"github.com/pthm-cable/washer/components"
)

// Clamp restricts v to [lo, hi]. Callers guarantee lo <= hi.
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// distanceSq returns the squared distance between two points.
func distanceSq(a, b components.Vec2) float32 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b components.Vec2) float32 {
	return float32(math.Sqrt(float64(distanceSq(a, b))))
}

// Normalize returns v scaled to unit length.
// The zero vector has no direction and normalizes to the zero vector.
func Normalize(v components.Vec2) components.Vec2 {
	l := v.Len()
	if l == 0 {
		return components.Vec2{}
	}
	return components.Vec2{X: v.X / l, Y: v.Y / l}
}

// normalizeHeading wraps an angle to [0, 2*Pi).
func normalizeHeading(h float32) float32 {
	const twoPi = 2 * math.Pi
	h = float32(math.Mod(float64(h), twoPi))
	if h < 0 {
		h += twoPi
	}
	return h
}
