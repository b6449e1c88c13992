// Package components defines the plain data types shared by the simulation.
package components

// Player is the controllable actor.
// Size is the collider diameter; resolvers use Size/2 as the radius.
type Player struct {
	Pos Vec2
	Vel Vec2

	// VelXMod is the horizontal bias published by the orbiting accessory.
	// -1, 0 or +1. Only read by the accessory control scheme.
	VelXMod float32

	Airborne bool
	Size     float32
	Map      int32
}

// Radius returns the collision radius.
func (p *Player) Radius() float32 {
	return p.Size / 2
}

// CircleObstacle is a static circular hazard. Size is its diameter.
type CircleObstacle struct {
	Pos  Vec2
	Size float32
}

// RectObstacle is a static axis-aligned square centered on Pos with side Size.
type RectObstacle struct {
	Pos  Vec2
	Size float32
}

// HalfExtent returns half the side length.
func (r RectObstacle) HalfExtent() float32 {
	return r.Size / 2
}

// Accessory orbits the player at a fixed radius.
type Accessory struct {
	Radius float32 // distance from the player center
	Angle  float32 // radians in [0, 2*Pi)
	Speed  float32 // radians per second
	Size   float32 // drawn diameter
	Pos    Vec2    // last computed world position
}
