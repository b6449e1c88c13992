// Package systems contains the physics, control and decor systems of the simulation.
package systems

import "github.com/pthm-cable/washer/components"

// ResolveCircles pushes the player out of every overlapping circular
// obstacle, in slice order. A contact grounds the player: vertical
// velocity is zeroed and Airborne cleared. When the player overlaps several
// obstacles, later pushes act on the already-corrected position.
// Returns the number of contacts resolved.
func ResolveCircles(p *components.Player, obstacles []components.CircleObstacle) int {
	contacts := 0
	for i := range obstacles {
		o := &obstacles[i]

		d := p.Pos.Sub(o.Pos)
		overlap := p.Radius() + o.Size/2 - d.Len()
		if overlap <= 0 {
			continue
		}

		// Concentric centers normalize to zero: no push, still a contact.
		p.Pos = p.Pos.Add(Normalize(d).Scale(overlap))
		p.Vel.Y = 0
		p.Airborne = false
		contacts++
	}
	return contacts
}

// ClosestPointOnRect returns the point of the square obstacle nearest to pt.
// Points inside the square map to themselves.
func ClosestPointOnRect(pt components.Vec2, r components.RectObstacle) components.Vec2 {
	minX := r.Pos.X - r.HalfExtent()
	minY := r.Pos.Y - r.HalfExtent()
	return components.Vec2{
		X: Clamp(pt.X, minX, minX+r.Size),
		Y: Clamp(pt.Y, minY, minY+r.Size),
	}
}

// ResolveRects pushes the player, treated as a circle of radius Size/2, away
// from the closest point of every overlapping square obstacle. Contacts are
// handled exactly like ResolveCircles.
func ResolveRects(p *components.Player, obstacles []components.RectObstacle) int {
	contacts := 0
	for i := range obstacles {
		closest := ClosestPointOnRect(p.Pos, obstacles[i])

		dist := Distance(p.Pos, closest)
		if dist >= p.Radius() {
			continue
		}

		// A center inside the square gives a zero shift vector.
		shift := Normalize(p.Pos.Sub(closest)).Scale(p.Radius() - dist)
		p.Pos = p.Pos.Add(shift)
		p.Vel.Y = 0
		p.Airborne = false
		contacts++
	}
	return contacts
}
