package game

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/washer/systems"
)

// Action is a logical player input.
type Action string

const (
	ActionLeft  Action = "left"
	ActionRight Action = "right"
	ActionJump  Action = "jump"
)

// Input is polled once per tick. Implementations must not block.
type Input interface {
	Pressed(a Action) bool
}

// seeker is implemented by inputs that depend on the tick being sampled.
type seeker interface {
	Seek(tick int64)
}

// Sample reads every action from in for the given tick.
func Sample(in Input, tick int64) systems.InputState {
	if s, ok := in.(seeker); ok {
		s.Seek(tick)
	}
	return systems.InputState{
		Left:  in.Pressed(ActionLeft),
		Right: in.Pressed(ActionRight),
		Jump:  in.Pressed(ActionJump),
	}
}

// KeyboardInput reads the raylib keyboard state.
type KeyboardInput struct{}

var keyBindings = map[Action][]int32{
	ActionLeft:  {rl.KeyLeft, rl.KeyA},
	ActionRight: {rl.KeyRight, rl.KeyD},
	ActionJump:  {rl.KeySpace, rl.KeyUp, rl.KeyW},
}

// Pressed reports whether any key bound to a is held.
func (KeyboardInput) Pressed(a Action) bool {
	for _, key := range keyBindings[a] {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}

// ScriptStep holds a set of actions over the inclusive tick range [From, To].
type ScriptStep struct {
	From int64    `yaml:"from"`
	To   int64    `yaml:"to"`
	Keys []Action `yaml:"keys"`
}

// ScriptedInput replays a fixed input script. An empty script never presses
// anything.
type ScriptedInput struct {
	Steps []ScriptStep
	tick  int64
}

// ParseScript decodes a YAML list of script steps.
func ParseScript(data []byte) (*ScriptedInput, error) {
	var steps []ScriptStep
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parsing input script: %w", err)
	}
	for i, st := range steps {
		if st.To < st.From {
			return nil, fmt.Errorf("input script step %d: to %d before from %d", i, st.To, st.From)
		}
		for _, k := range st.Keys {
			if _, ok := keyBindings[k]; !ok {
				return nil, fmt.Errorf("input script step %d: unknown key %q", i, k)
			}
		}
	}
	return &ScriptedInput{Steps: steps}, nil
}

// LoadScript reads an input script from a YAML file.
func LoadScript(path string) (*ScriptedInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input script: %w", err)
	}
	return ParseScript(data)
}

// Seek sets the tick subsequent Pressed calls answer for.
func (s *ScriptedInput) Seek(tick int64) {
	s.tick = tick
}

// Pressed reports whether a is held at the current tick.
func (s *ScriptedInput) Pressed(a Action) bool {
	for _, st := range s.Steps {
		if s.tick < st.From || s.tick > st.To {
			continue
		}
		for _, k := range st.Keys {
			if k == a {
				return true
			}
		}
	}
	return false
}

// handleInput processes window-level keys (not player actions).
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		g.showPerf = !g.showPerf
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showTuning = !g.showTuning
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.resetPlayer()
	}

	// Single-step while paused
	if g.paused && rl.IsKeyPressed(rl.KeyN) {
		g.Step(Sample(g.input, g.tick))
	}
}

// handleResize checks for window resize and refits the canvas.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() || g.camera == nil {
		return
	}
	g.camera.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}
