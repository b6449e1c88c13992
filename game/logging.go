package game

import (
	"log/slog"

	"github.com/pthm-cable/washer/telemetry"
)

// logPerfStats logs performance statistics with the player state they were
// measured under.
func (g *Game) logPerfStats(stats telemetry.PerfStats) {
	slog.Info("perf",
		"tick", g.tick,
		"steps_per_update", g.stepsPerUpdate,
		"stats", stats,
	)
	g.logWorldState()
}

// logWorldState logs the current world state.
func (g *Game) logWorldState() {
	p := g.player
	slog.Info("world",
		"tick", g.tick,
		"map", p.Map,
		"x", p.Pos.X,
		"y", p.Pos.Y,
		"vel_x", p.Vel.X,
		"vel_y", p.Vel.Y,
		"airborne", p.Airborne,
		"transitions", g.transitions,
		"resets", g.resets,
		"cached_maps", len(g.layouts),
	)
}
