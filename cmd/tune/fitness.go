package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/washer/components"
	"github.com/pthm-cable/washer/config"
	"github.com/pthm-cable/washer/game"
	"github.com/pthm-cable/washer/systems"
)

// maxJumpTicks caps a jump measurement when the player never lands.
const maxJumpTicks = 5000

// JumpShape describes a single jump from rest on flat ground while holding
// right.
type JumpShape struct {
	Apex     float64 // max height above the ground line
	Airtime  int     // ticks until grounded again
	Distance float64 // horizontal travel
}

// Targets is the jump the tuner aims for.
type Targets struct {
	Apex     float64
	Airtime  float64
	Distance float64
}

// measureJump simulates one keyboard jump with no obstacles and no wrap.
func measureJump(k systems.Kinematics, scheme systems.ControlScheme) JumpShape {
	k.ClampX = false
	k.Jitter = 0
	k.WrapBound = math.MaxFloat32
	scheme.JumpSource = systems.JumpKeyboard

	p := components.Player{Pos: components.Vec2{Y: k.GroundY}, Size: 20}
	in := systems.InputState{Right: true, Jump: true}

	shape := JumpShape{Airtime: maxJumpTicks}
	for tick := 0; tick < maxJumpTicks; tick++ {
		systems.ApplyControls(&p, in, scheme)
		in.Jump = false
		k.Integrate(&p, nil)

		if h := float64(p.Pos.Y - k.GroundY); h > shape.Apex {
			shape.Apex = h
		}
		if !p.Airborne {
			shape.Airtime = tick + 1
			break
		}
	}
	shape.Distance = float64(p.Pos.X)
	return shape
}

// shapeError is the sum of squared relative errors against the targets.
// Targets of zero are ignored.
func shapeError(s JumpShape, t Targets) float64 {
	var e float64
	add := func(got, want float64) {
		if want == 0 {
			return
		}
		r := (got - want) / want
		e += r * r
	}
	add(s.Apex, t.Apex)
	add(float64(s.Airtime), t.Airtime)
	add(s.Distance, t.Distance)
	return e
}

// FitnessEvaluator scores parameter vectors by jump shape and by how far a
// scripted run gets through real obstacle layouts.
type FitnessEvaluator struct {
	params         *ParamVector
	targets        Targets
	seeds          []int64
	runTicks       int64
	progressWeight float64
	baseConfig     *config.Config
	script         []byte

	mu           sync.Mutex
	lastShape    JumpShape
	lastProgress float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, targets Targets, seeds []int64, runTicks int64, progressWeight float64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:         params,
		targets:        targets,
		seeds:          seeds,
		runTicks:       runTicks,
		progressWeight: progressWeight,
		baseConfig:     baseCfg,
		// Hold right and keep jumping.
		script: []byte("[{from: 0, to: 1000000000, keys: [right, jump]}]"),
	}
}

// LastShape returns the jump shape and mean progress from the most recent
// evaluation.
func (fe *FitnessEvaluator) LastShape() (JumpShape, float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastShape, fe.lastProgress
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		return math.Inf(1)
	}

	shape := measureJump(cfg.Derived.Kinematics, cfg.Derived.Scheme)
	fitness := shapeError(shape, fe.targets)

	var progress float64
	if fe.progressWeight > 0 && len(fe.seeds) > 0 {
		progress = fe.meanProgress(x)
		fitness += fe.progressWeight / (1 + progress)
	}

	fe.mu.Lock()
	fe.lastShape = shape
	fe.lastProgress = progress
	fe.mu.Unlock()

	return fitness
}

// meanProgress runs every seed in parallel and averages the number of map
// transitions reached.
func (fe *FitnessEvaluator) meanProgress(x []float64) float64 {
	results := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var total float64
	for _, r := range results {
		total += r
	}
	return total / float64(len(results))
}

// runSimulation plays the scripted run for one seed and returns its map
// transition count.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) float64 {
	cfg := fe.copyConfig()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		return 0
	}

	script, err := game.ParseScript(fe.script)
	if err != nil {
		return 0
	}

	g, err := game.NewGameWithOptions(game.Options{
		Config:         cfg,
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 1,
		Input:          script,
	})
	if err != nil {
		return 0
	}
	defer g.Unload()

	for g.Tick() < fe.runTicks {
		g.UpdateHeadless()
	}
	return float64(g.Transitions())
}

// copyConfig creates a copy of the base config that evaluations can edit.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Accessories = append([]config.AccessoryConfig(nil), fe.baseConfig.Accessories...)
	return &cfg
}
