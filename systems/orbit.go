package systems

import (
	"math"

	"github.com/pthm-cable/washer/components"
)

// UpdateOrbit advances every accessory around the player by dt seconds and
// publishes the horizontal bias of the last one on p.VelXMod.
//
// The bias is +1 when the accessory is above and right of a grounded player,
// -1 above and left, and 0 otherwise (below, straight above, or airborne).
func UpdateOrbit(p *components.Player, accs []components.Accessory, dt float32) {
	for i := range accs {
		a := &accs[i]
		a.Angle = normalizeHeading(a.Angle + dt*a.Speed)

		sin, cos := math.Sincos(float64(a.Angle))
		a.Pos = components.Vec2{
			X: p.Pos.X + a.Radius*float32(cos),
			Y: p.Pos.Y + a.Radius*float32(sin),
		}

		p.VelXMod = orbitBias(p, a.Pos)
	}
}

func orbitBias(p *components.Player, acc components.Vec2) float32 {
	if p.Airborne || acc.Y <= p.Pos.Y {
		return 0
	}
	switch {
	case acc.X > p.Pos.X:
		return 1
	case acc.X < p.Pos.X:
		return -1
	}
	return 0
}
