package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/washer/config"
	"github.com/pthm-cable/washer/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed for layouts and decor (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited; headless defaults to 3600)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")
	scriptPath := flag.String("script", "", "YAML input script replayed instead of the keyboard")
	perf := flag.Bool("perf", false, "Log performance stats periodically")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
		PerfLog:        *perf,
	}

	if *scriptPath != "" {
		script, err := game.LoadScript(*scriptPath)
		if err != nil {
			slog.Error("failed to load input script", "error", err)
			os.Exit(1)
		}
		opts.Input = script
	}

	if *headless {
		os.Exit(runHeadless(opts, *maxTicks))
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Washer")
	defer rl.CloseWindow()
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// runHeadless runs the simulation without raylib and logs a run summary.
// Returns the process exit code.
func runHeadless(opts game.Options, maxTicks int) int {
	if maxTicks <= 0 {
		maxTicks = 3600
	}

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return 1
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"steps_per_update", opts.StepsPerUpdate,
	)

	start := time.Now()
	for int(g.Tick()) < maxTicks {
		g.UpdateHeadless()
	}

	p := g.Player()
	slog.Info("headless_run_complete",
		"tick", g.Tick(),
		"elapsed_ms", time.Since(start).Milliseconds(),
		"map", g.MapLabel(),
		"x", p.Pos.X,
		"y", p.Pos.Y,
		"summary", g.Summary(),
	)
	return 0
}
