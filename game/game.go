// Package game owns the simulation context and runs the fixed-step loop.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/washer/camera"
	"github.com/pthm-cable/washer/components"
	"github.com/pthm-cable/washer/config"
	"github.com/pthm-cable/washer/systems"
	"github.com/pthm-cable/washer/telemetry"
	"github.com/pthm-cable/washer/ui"
)

// Options configures a new game instance.
type Options struct {
	Config         *config.Config // nil uses config.Cfg()
	Seed           int64
	OutputDir      string // empty disables CSV output
	Headless       bool
	StepsPerUpdate int   // ticks per Update call
	PerfLog        bool  // periodic perf log lines
	Input          Input // nil uses the keyboard (graphical) or no input (headless)
}

// Game holds the complete game state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	// Decorative entities
	world *ecs.World
	decor *systems.DecorSystem

	// Physics state
	player      components.Player
	accessories []components.Accessory
	layouts     map[int32]*Layout
	layout      *Layout
	kin         systems.Kinematics
	scheme      systems.ControlScheme
	dt          float32

	input Input

	// State
	seed           int64
	tick           int64
	paused         bool
	headless       bool
	stepsPerUpdate int
	transitions    int
	resets         int

	// Telemetry
	perfCollector *telemetry.PerfCollector
	perfLog       bool
	registry      *systems.SystemRegistry
	outputManager *telemetry.OutputManager
	pendingTrace  []telemetry.TickSample
	runSamples    []telemetry.TickSample
	runTickUS     []float64

	// Rendering (nil/zero in headless mode)
	camera     *camera.Camera
	canvas     rl.RenderTexture2D
	hud        *ui.HUD
	perfPanel  *ui.PerfPanel
	tuning     *ui.TuningPanel
	showPerf   bool
	showTuning bool
}

// NewGameWithOptions creates a new game instance with the given options.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		world:          ecs.NewWorld(),
		layouts:        make(map[int32]*Layout),
		kin:            cfg.Derived.Kinematics,
		scheme:         cfg.Derived.Scheme,
		dt:             cfg.Derived.DT32,
		input:          opts.Input,
		seed:           opts.Seed,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		perfLog:        opts.PerfLog,
		registry:       systems.NewSystemRegistry(),
	}
	g.decor = systems.NewDecorSystem(g.world)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	if g.input == nil {
		if opts.Headless {
			g.input = &ScriptedInput{}
		} else {
			g.input = KeyboardInput{}
		}
	}

	g.spawnWorld()

	if !opts.Headless {
		g.initRendering()
	}

	slog.Info("game_created",
		"seed", opts.Seed,
		"jump_source", g.scheme.JumpSource.String(),
		"collision_order", g.scheme.Order.String(),
		"map", g.player.Map,
		"output_dir", g.outputManager.Dir(),
	)
	return g, nil
}

// Update handles window input and runs stepsPerUpdate ticks.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step(Sample(g.input, g.tick))
	}
}

// UpdateHeadless runs stepsPerUpdate ticks without touching the window.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step(Sample(g.input, g.tick))
	}
}

// Unload flushes pending output and releases resources.
func (g *Game) Unload() {
	g.flushTrace()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	if !g.headless {
		rl.UnloadRenderTexture(g.canvas)
	}
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int64 {
	return g.tick
}

// Player returns a snapshot of the player state.
func (g *Game) Player() components.Player {
	return g.player
}

// Accessories returns the orbiting accessories. Callers must not modify them.
func (g *Game) Accessories() []components.Accessory {
	return g.accessories
}

// Obstacles returns the obstacle layout of the current map.
func (g *Game) Obstacles() ([]components.CircleObstacle, []components.RectObstacle) {
	return g.layout.Circles, g.layout.Rects
}

// MapLabel returns the text shown by the map indicator.
func (g *Game) MapLabel() string {
	return fmt.Sprintf("Map %d", g.player.Map)
}

// Kinematics exposes the live integrator tuning.
func (g *Game) Kinematics() *systems.Kinematics {
	return &g.kin
}

// Scheme exposes the live control scheme.
func (g *Game) Scheme() *systems.ControlScheme {
	return &g.scheme
}

// Transitions returns the number of map transitions so far.
func (g *Game) Transitions() int {
	return g.transitions
}
