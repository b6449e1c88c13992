package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/washer/systems"
)

const (
	tuningWidth  = 300
	sliderWidth  = 180
	sliderHeight = 18
)

// slider binds a raygui slider to a float32 field.
type slider struct {
	label    string
	min, max float32
	value    func(k *systems.Kinematics, s *systems.ControlScheme) *float32
}

var tuningSliders = []slider{
	{"Gravity", 0, 0.5, func(k *systems.Kinematics, _ *systems.ControlScheme) *float32 { return &k.Gravity }},
	{"Drag step", 0, 0.5, func(k *systems.Kinematics, _ *systems.ControlScheme) *float32 { return &k.DragStep }},
	{"Jump power", 0, 10, func(_ *systems.Kinematics, s *systems.ControlScheme) *float32 { return &s.JumpPower }},
	{"Move speed", 0, 6, func(_ *systems.Kinematics, s *systems.ControlScheme) *float32 { return &s.MoveSpeed }},
	{"Kick", 0, 6, func(_ *systems.Kinematics, s *systems.ControlScheme) *float32 { return &s.AccessoryKick }},
}

// TuningPanel edits the live physics and control tuning.
type TuningPanel struct {
	renderer *Renderer
}

// NewTuningPanel creates a tuning panel.
func NewTuningPanel() *TuningPanel {
	return &TuningPanel{renderer: NewRenderer()}
}

// Draw renders the panel against the right edge of the screen and applies
// slider and toggle edits to k and s. Returns true if anything changed.
func (t *TuningPanel) Draw(screenWidth int32, k *systems.Kinematics, s *systems.ControlScheme) bool {
	r := t.renderer
	x := screenWidth - tuningWidth - 10
	y := int32(10)
	height := int32(len(tuningSliders))*36 + 150
	r.DrawPanel(x, y, tuningWidth, height)

	px := float32(x + r.Theme.Padding)
	py := float32(y + 6)
	r.DrawSectionHeader(int32(px), int32(py), "Tuning [Tab]")
	py += 22

	changed := false
	for _, sl := range tuningSliders {
		field := sl.value(k, s)
		rl.DrawText(sl.label, int32(px), int32(py), 12, rl.Gray)
		py += 14
		v := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: sliderHeight},
			"", "",
			*field, sl.min, sl.max,
		)
		rl.DrawText(fmt.Sprintf("%.2f", *field), int32(px+sliderWidth+10), int32(py+2), 14, rl.LightGray)
		if v != *field {
			*field = v
			changed = true
		}
		py += 22
	}

	py += 6
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: 135, Height: 26}, "Drag: "+onOff(k.Drag)) {
		k.Drag = !k.Drag
		changed = true
	}
	if gui.Button(rl.Rectangle{X: px + 145, Y: py, Width: 135, Height: 26}, "Clamp X: "+onOff(k.ClampX)) {
		k.ClampX = !k.ClampX
		changed = true
	}
	py += 32
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: 280, Height: 26}, "Jump: "+s.JumpSource.String()) {
		s.JumpSource = nextJumpSource(s.JumpSource)
		changed = true
	}
	py += 32
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: 280, Height: 26}, "Order: "+s.Order.String()) {
		s.Order = nextCollisionOrder(s.Order)
		changed = true
	}
	return changed
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func nextJumpSource(j systems.JumpSource) systems.JumpSource {
	if j == systems.JumpKeyboard {
		return systems.JumpAccessory
	}
	return systems.JumpKeyboard
}

func nextCollisionOrder(o systems.CollisionOrder) systems.CollisionOrder {
	if o == systems.ResolveAfterIntegrate {
		return systems.ResolveBeforeControls
	}
	return systems.ResolveAfterIntegrate
}
