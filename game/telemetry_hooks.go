package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/washer/systems"
	"github.com/pthm-cable/washer/telemetry"
)

// recordTick samples the post-tick player state for trace.csv, the run
// summary and the periodic perf log.
func (g *Game) recordTick(in systems.InputState, res StepResult) {
	tc := g.cfg.Telemetry
	p := g.player

	sample := telemetry.TickSample{
		Tick:           g.tick,
		X:              p.Pos.X,
		Y:              p.Pos.Y,
		VelX:           p.Vel.X,
		VelY:           p.Vel.Y,
		Airborne:       p.Airborne,
		Map:            p.Map,
		CircleContacts: res.CircleContacts,
		RectContacts:   res.RectContacts,
		Jumped:         res.Jumped,
	}

	if g.headless {
		g.runSamples = append(g.runSamples, sample)
		us := float64(g.perfCollector.LastTickDuration()) / float64(time.Microsecond)
		g.runTickUS = append(g.runTickUS, us)
	}

	if g.outputManager != nil && tc.TraceInterval > 0 && g.tick%int64(tc.TraceInterval) == 0 {
		g.pendingTrace = append(g.pendingTrace, sample)
	}

	if tc.PerfLogInterval > 0 && (g.tick+1)%int64(tc.PerfLogInterval) == 0 {
		g.flushTelemetry()
	}
}

// flushTelemetry writes buffered trace rows and a perf record, and logs
// perf stats when enabled.
func (g *Game) flushTelemetry() {
	g.flushTrace()

	perfStats := g.perfCollector.Stats()
	if g.perfLog {
		g.logPerfStats(perfStats)
	}
	if err := g.outputManager.WritePerf(perfStats, g.tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// flushTrace writes buffered trace rows to trace.csv.
func (g *Game) flushTrace() {
	if len(g.pendingTrace) == 0 {
		return
	}
	if err := g.outputManager.WriteTrace(g.pendingTrace); err != nil {
		slog.Error("failed to write trace", "error", err)
	}
	g.pendingTrace = g.pendingTrace[:0]
}

// Summary aggregates the run so far. Only headless games keep the per-tick
// history it needs; graphical games return an empty summary.
func (g *Game) Summary() telemetry.Summary {
	return telemetry.Summarize(g.runSamples, g.runTickUS)
}
