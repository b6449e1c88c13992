package game

import (
	"log/slog"

	"github.com/pthm-cable/washer/systems"
	"github.com/pthm-cable/washer/telemetry"
)

// StepResult reports what happened during one tick.
type StepResult struct {
	Jumped         bool
	CircleContacts int
	RectContacts   int
	MapStep        int32 // -1, 0 or +1
	Reset          bool  // the NaN guard restored the spawn state
}

// Step runs a single fixed tick with the given input.
//
// Order with ResolveAfterIntegrate: orbit, controls, integrate, map
// transition, resolve circles, resolve rects, decor. ResolveBeforeControls
// moves both resolvers between orbit and controls.
func (g *Game) Step(in systems.InputState) StepResult {
	var res StepResult
	p := &g.player
	pc := g.perfCollector

	pc.StartTick()

	pc.StartPhase(telemetry.PhaseOrbit)
	systems.UpdateOrbit(p, g.accessories, g.dt)

	if g.scheme.Order == systems.ResolveBeforeControls {
		g.resolveCollisions(&res)
	}

	pc.StartPhase(telemetry.PhaseControls)
	res.Jumped = systems.ApplyControls(p, in, g.scheme)

	pc.StartPhase(telemetry.PhaseIntegrate)
	from := p.Map
	res.MapStep = g.kin.Integrate(p, g.rng)

	if res.MapStep != 0 {
		pc.StartPhase(telemetry.PhaseMapTransition)
		g.enterMap(from, p.Map)
	}

	if g.scheme.Order == systems.ResolveAfterIntegrate {
		g.resolveCollisions(&res)
	}

	pc.StartPhase(telemetry.PhaseDecor)
	g.decor.Update(g.rng)

	pc.EndTick()

	if p.Pos.IsNaN() || p.Vel.IsNaN() {
		slog.Warn("player_state_reset",
			"tick", g.tick,
			"map", p.Map,
		)
		g.resetPlayer()
		res.Reset = true
	}

	g.recordTick(in, res)
	g.tick++
	return res
}

// resolveCollisions runs the circle resolver, then the rectangle resolver,
// against the current map.
func (g *Game) resolveCollisions(res *StepResult) {
	p := &g.player
	g.perfCollector.StartPhase(telemetry.PhaseResolveCircles)
	res.CircleContacts = systems.ResolveCircles(p, g.layout.Circles)
	g.perfCollector.StartPhase(telemetry.PhaseResolveRects)
	res.RectContacts = systems.ResolveRects(p, g.layout.Rects)
}

// enterMap provisions the obstacles for a new map index.
func (g *Game) enterMap(from, to int32) {
	g.layout = g.layoutFor(to)
	g.transitions++

	slog.Info("map_transition",
		"tick", g.tick,
		"from", from,
		"to", to,
		"label", g.MapLabel(),
	)

	err := g.outputManager.WriteTransition(telemetry.Transition{Tick: g.tick, From: from, To: to})
	if err != nil {
		slog.Error("failed to write transition", "error", err)
	}
}
