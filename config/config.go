// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/washer/systems"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Canvas      CanvasConfig      `yaml:"canvas"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Control     ControlConfig     `yaml:"control"`
	Obstacles   ObstaclesConfig   `yaml:"obstacles"`
	Accessories []AccessoryConfig `yaml:"accessories"`
	Decor       DecorConfig       `yaml:"decor"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CanvasConfig holds the low-resolution pixel-art canvas the world is drawn
// into before being scaled up to the window.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig holds per-tick physics constants.
type PhysicsConfig struct {
	DT         float64 `yaml:"dt"`          // seconds per fixed tick
	Gravity    float64 `yaml:"gravity"`     // velocity units per tick
	GroundY    float64 `yaml:"ground_y"`    // implicit ground plane
	WrapBound  float64 `yaml:"wrap_bound"`  // |x| beyond which the map pages
	ClampBound float64 `yaml:"clamp_bound"` // visible play range
	ClampX     bool    `yaml:"clamp_x"`     // clamp x to clamp_bound (disables paging)
	Drag       bool    `yaml:"drag"`        // decay horizontal velocity
	DragStep   float64 `yaml:"drag_step"`   // per-tick horizontal decay
	Jitter     int     `yaml:"jitter"`      // vertical noise amplitude (0 = off)
}

// PlayerConfig holds player spawn settings.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Size   float64 `yaml:"size"` // collider diameter
	Map    int32   `yaml:"map"`  // starting map index
}

// ControlConfig selects the control variant.
type ControlConfig struct {
	JumpSource     string  `yaml:"jump_source"`     // keyboard | accessory
	CollisionOrder string  `yaml:"collision_order"` // after_integrate | before_controls
	JumpPower      float64 `yaml:"jump_power"`
	MoveSpeed      float64 `yaml:"move_speed"`
	AccessoryKick  float64 `yaml:"accessory_kick"`
}

// ObstaclesConfig holds level layout parameters for each map.
type ObstaclesConfig struct {
	Circles CircleLayoutConfig `yaml:"circles"`
	Rects   RectLayoutConfig   `yaml:"rects"`
}

// CircleLayoutConfig describes the random circle field.
type CircleLayoutConfig struct {
	Count   int `yaml:"count"`
	MinSize int `yaml:"min_size"` // inclusive
	MaxSize int `yaml:"max_size"` // exclusive
	MinX    int `yaml:"min_x"`
	MaxX    int `yaml:"max_x"`
	MinY    int `yaml:"min_y"`
	MaxY    int `yaml:"max_y"`
}

// RectLayoutConfig describes the random square field.
type RectLayoutConfig struct {
	Count int `yaml:"count"`
	Size  int `yaml:"size"`
	MinX  int `yaml:"min_x"`
	MaxX  int `yaml:"max_x"`
	MinY  int `yaml:"min_y"`
	MaxY  int `yaml:"max_y"`
}

// AccessoryConfig describes one orbiting accessory.
type AccessoryConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // radians per second
	Size   float64 `yaml:"size"`
}

// DecorConfig holds background pixel parameters.
type DecorConfig struct {
	Pixels        int `yaml:"pixels"`
	Spread        int `yaml:"spread"`         // pixels spawn in [-spread, spread)
	FlickerChance int `yaml:"flicker_chance"` // one in N ticks
	FlickerMinX   int `yaml:"flicker_min_x"`
	FlickerMaxX   int `yaml:"flicker_max_x"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfCollectorWindow int `yaml:"perf_collector_window"` // ticks averaged by the perf collector
	PerfLogInterval     int `yaml:"perf_log_interval"`     // ticks between perf log lines
	TraceInterval       int `yaml:"trace_interval"`        // ticks between trace.csv rows
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32        float32               // Physics.DT as float32
	CanvasScale int32                 // largest integer scale of the canvas that fits the window
	Kinematics  systems.Kinematics    // integrator built from Physics
	Scheme      systems.ControlScheme // control variant built from Control
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Recompute refreshes derived values after fields were edited in place.
func (c *Config) Recompute() error {
	return c.computeDerived()
}

// computeDerived validates the loaded values and calculates derived ones.
func (c *Config) computeDerived() error {
	if c.Player.Size <= 0 {
		return fmt.Errorf("player.size must be positive, got %v", c.Player.Size)
	}
	if c.Physics.ClampBound > c.Physics.WrapBound {
		return fmt.Errorf("physics.clamp_bound %v exceeds wrap_bound %v", c.Physics.ClampBound, c.Physics.WrapBound)
	}
	if c.Obstacles.Circles.MinSize >= c.Obstacles.Circles.MaxSize && c.Obstacles.Circles.Count > 0 {
		return fmt.Errorf("obstacles.circles: min_size %d must be below max_size %d",
			c.Obstacles.Circles.MinSize, c.Obstacles.Circles.MaxSize)
	}

	if c.Decor.Pixels > 0 && c.Decor.Spread <= 0 {
		return fmt.Errorf("decor.spread must be positive, got %d", c.Decor.Spread)
	}

	source, err := systems.ParseJumpSource(c.Control.JumpSource)
	if err != nil {
		return fmt.Errorf("control.jump_source: %w", err)
	}
	order, err := systems.ParseCollisionOrder(c.Control.CollisionOrder)
	if err != nil {
		return fmt.Errorf("control.collision_order: %w", err)
	}

	c.Derived.DT32 = float32(c.Physics.DT)

	c.Derived.CanvasScale = 1
	if c.Canvas.Width > 0 && c.Canvas.Height > 0 {
		sx := c.Screen.Width / c.Canvas.Width
		sy := c.Screen.Height / c.Canvas.Height
		scale := sx
		if sy < scale {
			scale = sy
		}
		if scale > 1 {
			c.Derived.CanvasScale = int32(scale)
		}
	}

	c.Derived.Kinematics = systems.Kinematics{
		Gravity:    float32(c.Physics.Gravity),
		GroundY:    float32(c.Physics.GroundY),
		WrapBound:  float32(c.Physics.WrapBound),
		ClampBound: float32(c.Physics.ClampBound),
		DragStep:   float32(c.Physics.DragStep),
		Drag:       c.Physics.Drag,
		ClampX:     c.Physics.ClampX,
		Jitter:     c.Physics.Jitter,
	}
	c.Derived.Scheme = systems.ControlScheme{
		JumpSource:    source,
		JumpPower:     float32(c.Control.JumpPower),
		MoveSpeed:     float32(c.Control.MoveSpeed),
		AccessoryKick: float32(c.Control.AccessoryKick),
		Order:         order,
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
