package systems

import (
	"fmt"

	"github.com/pthm-cable/washer/components"
)

// InputState is the player input sampled once per tick.
type InputState struct {
	Left, Right, Jump bool
}

// JumpSource selects where a jump's horizontal impulse comes from.
type JumpSource uint8

const (
	// JumpKeyboard jumps straight up; left/right keys steer.
	JumpKeyboard JumpSource = iota
	// JumpAccessory only jumps while the orbiting accessory points up-left or
	// up-right, and kicks the player in that direction.
	JumpAccessory
)

// CollisionOrder places the collision resolvers within a tick.
type CollisionOrder uint8

const (
	// ResolveAfterIntegrate runs input, integration, then both resolvers, so
	// corrections act on the freshest position.
	ResolveAfterIntegrate CollisionOrder = iota
	// ResolveBeforeControls resolves against last tick's position before
	// input and integration run.
	ResolveBeforeControls
)

var jumpSourceNames = map[string]JumpSource{
	"keyboard":  JumpKeyboard,
	"accessory": JumpAccessory,
}

var collisionOrderNames = map[string]CollisionOrder{
	"after_integrate": ResolveAfterIntegrate,
	"before_controls": ResolveBeforeControls,
}

// ParseJumpSource parses a config name into a JumpSource.
func ParseJumpSource(s string) (JumpSource, error) {
	if v, ok := jumpSourceNames[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown jump source %q", s)
}

// ParseCollisionOrder parses a config name into a CollisionOrder.
func ParseCollisionOrder(s string) (CollisionOrder, error) {
	if v, ok := collisionOrderNames[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown collision order %q", s)
}

func (s JumpSource) String() string {
	for name, v := range jumpSourceNames {
		if v == s {
			return name
		}
	}
	return fmt.Sprintf("JumpSource(%d)", uint8(s))
}

func (o CollisionOrder) String() string {
	for name, v := range collisionOrderNames {
		if v == o {
			return name
		}
	}
	return fmt.Sprintf("CollisionOrder(%d)", uint8(o))
}

// ControlScheme selects one of the control variants of the prototype.
type ControlScheme struct {
	JumpSource    JumpSource
	JumpPower     float32 // Vel.Y set by a jump
	MoveSpeed     float32 // Vel.X while a direction is held (keyboard)
	AccessoryKick float32 // Vel.X = VelXMod * AccessoryKick (accessory)
	Order         CollisionOrder
}

// DefaultControlScheme returns the keyboard scheme.
func DefaultControlScheme() ControlScheme {
	return ControlScheme{
		JumpSource:    JumpKeyboard,
		JumpPower:     4,
		MoveSpeed:     2,
		AccessoryKick: 3,
		Order:         ResolveAfterIntegrate,
	}
}

// ApplyControls turns the sampled intent into velocity changes.
// Returns true when a jump was started.
func ApplyControls(p *components.Player, in InputState, scheme ControlScheme) bool {
	switch scheme.JumpSource {
	case JumpAccessory:
		if in.Jump && !p.Airborne && p.VelXMod != 0 {
			p.Vel.Y = scheme.JumpPower
			p.Vel.X = p.VelXMod * scheme.AccessoryKick
			p.Airborne = true
			return true
		}
		return false

	default:
		switch {
		case in.Left && !in.Right:
			p.Vel.X = -scheme.MoveSpeed
		case in.Right && !in.Left:
			p.Vel.X = scheme.MoveSpeed
		}
		if in.Jump && !p.Airborne {
			p.Vel.Y = scheme.JumpPower
			p.Airborne = true
			return true
		}
		return false
	}
}
