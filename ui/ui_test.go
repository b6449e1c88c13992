package ui

import (
	"testing"
	"time"

	"github.com/pthm-cable/washer/systems"
	"github.com/pthm-cable/washer/telemetry"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		paused, airborne bool
		want             string
	}{
		{false, false, "Grounded"},
		{false, true, "Airborne"},
		{true, false, "PAUSED | Grounded"},
	}
	for _, tc := range tests {
		if got := statusText(tc.paused, tc.airborne); got != tc.want {
			t.Errorf("statusText(%v, %v) = %q, want %q", tc.paused, tc.airborne, got, tc.want)
		}
	}
}

func TestPhaseRowsPipelineOrder(t *testing.T) {
	stats := telemetry.PerfStats{
		PhaseAvg: map[string]time.Duration{
			telemetry.PhaseDecor:          time.Microsecond,
			telemetry.PhaseResolveCircles: 3 * time.Microsecond,
			telemetry.PhaseOrbit:          time.Microsecond,
		},
		PhasePct: map[string]float64{
			telemetry.PhaseResolveCircles: 60,
		},
	}

	rows := phaseRows(stats, systems.NewSystemRegistry())

	want := []string{"Orbit", "Circle Collision", "Decor"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, name := range want {
		if rows[i].Name != name {
			t.Errorf("rows[%d] = %q, want %q", i, rows[i].Name, name)
		}
	}
	if rows[1].Pct != 60 {
		t.Errorf("circle pct = %v, want 60", rows[1].Pct)
	}
}

func TestToggleCycles(t *testing.T) {
	if nextJumpSource(nextJumpSource(systems.JumpKeyboard)) != systems.JumpKeyboard {
		t.Error("jump source toggle does not cycle")
	}
	if nextCollisionOrder(systems.ResolveAfterIntegrate) != systems.ResolveBeforeControls {
		t.Error("collision order toggle")
	}
}
