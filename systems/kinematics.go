package systems

import (
	"math/rand"

	"github.com/pthm-cable/washer/components"
)

// Kinematics integrates the player under gravity, drag, the ground line and
// the horizontal world wrap. All quantities are per tick.
type Kinematics struct {
	Gravity    float32 // subtracted from Vel.Y every airborne tick
	GroundY    float32 // implicit ground plane
	WrapBound  float32 // |x| beyond this pages the map
	ClampBound float32 // visible play range when ClampX is set
	DragStep   float32 // per-tick decay of Vel.X toward zero

	Drag   bool
	ClampX bool

	// Jitter adds integer noise in [-Jitter, Jitter) to the vertical step.
	// Zero disables it.
	Jitter int
}

// DefaultKinematics returns the tuning the prototype ships with.
func DefaultKinematics() Kinematics {
	return Kinematics{
		Gravity:    0.1,
		GroundY:    -91,
		WrapBound:  220,
		ClampBound: 200,
		DragStep:   0.1,
		Drag:       true,
	}
}

// ApplyGravity accelerates the player downward while it is above the ground
// line. It leaves Airborne alone: jumps and map pages set it, and only a
// contact or the ground clamp clears it.
func (k *Kinematics) ApplyGravity(p *components.Player) {
	if p.Pos.Y <= k.GroundY {
		return
	}
	p.Vel.Y -= k.Gravity
}

// Move advances the position by the velocity and clamps it to the ground.
// rng is only consulted when Jitter is enabled and may be nil otherwise.
func (k *Kinematics) Move(p *components.Player, rng *rand.Rand) {
	if k.Drag {
		p.Vel.X = decayToward0(p.Vel.X, k.DragStep)
	}

	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
	if k.Jitter > 0 && rng != nil {
		p.Pos.Y += float32(rng.Intn(2*k.Jitter) - k.Jitter)
	}

	if p.Pos.Y <= k.GroundY {
		p.Pos.Y = k.GroundY
		p.Airborne = false
		if p.Vel.Y < 0 {
			p.Vel.Y = 0
		}
	}

	if k.ClampX {
		p.Pos.X = Clamp(p.Pos.X, -k.ClampBound, k.ClampBound)
	}
}

// Wrap teleports the player across the world when it leaves the wrap bounds
// and pages the map index. Returns the map step taken: -1, 0 or +1.
func (k *Kinematics) Wrap(p *components.Player) int32 {
	switch {
	case p.Pos.X > k.WrapBound:
		p.Pos.X = -k.WrapBound
		p.Pos.Y = 0
		p.Airborne = p.Pos.Y > k.GroundY
		p.Map++
		return 1
	case p.Pos.X < -k.WrapBound:
		p.Pos.X = k.WrapBound
		p.Pos.Y = 0
		p.Airborne = p.Pos.Y > k.GroundY
		p.Map--
		return -1
	}
	return 0
}

// Integrate runs gravity, movement and the wrap check for one tick.
func (k *Kinematics) Integrate(p *components.Player, rng *rand.Rand) int32 {
	k.ApplyGravity(p)
	k.Move(p, rng)
	return k.Wrap(p)
}

// decayToward0 moves v toward zero by step without crossing it.
func decayToward0(v, step float32) float32 {
	switch {
	case v > step:
		return v - step
	case v < -step:
		return v + step
	}
	return 0
}
