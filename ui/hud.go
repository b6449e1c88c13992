package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/washer/components"
	"github.com/pthm-cable/washer/systems"
	"github.com/pthm-cable/washer/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	MapLabel string
	Tick     int64
	Steps    int
	FPS      int32
	Paused   bool
	Airborne bool
	Pos      components.Vec2
	Vel      components.Vec2
	VelXMod  float32
	Scheme   string
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	// Map indicator
	rl.DrawText(data.MapLabel, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d | %s", data.Tick, data.Steps, data.FPS, data.Scheme),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Pos: (%.1f, %.1f)  Vel: (%.2f, %.2f)", data.Pos.X, data.Pos.Y, data.Vel.X, data.Vel.Y),
		10, 55, 16, rl.LightGray,
	)

	rl.DrawText(statusText(data.Paused, data.Airborne), 10, 75, 16, rl.Yellow)
	h.renderer.DrawCenteredBar(200, 77, "Bias", data.VelXMod, 1, 200)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

func statusText(paused, airborne bool) string {
	state := "Grounded"
	if airborne {
		state = "Airborne"
	}
	if paused {
		return "PAUSED | " + state
	}
	return state
}

// PhaseRow is one line of the perf panel.
type PhaseRow struct {
	Name string
	Avg  time.Duration
	Pct  float64
}

// phaseRows lists the measured phases in pipeline order with display names.
func phaseRows(stats telemetry.PerfStats, reg *systems.SystemRegistry) []PhaseRow {
	var rows []PhaseRow
	for _, phase := range telemetry.Phases {
		avg, ok := stats.PhaseAvg[phase]
		if !ok {
			continue
		}
		name := phase
		if reg != nil {
			name = reg.GetName(phase)
		}
		rows = append(rows, PhaseRow{Name: name, Avg: avg, Pct: stats.PhasePct[phase]})
	}
	return rows
}

// PerfPanel renders the system performance panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, reg *systems.SystemRegistry) {
	rows := phaseRows(stats, reg)
	r := p.renderer
	height := int32(len(rows)+4) * r.Theme.LineHeight
	r.DrawPanel(p.x, p.y, 280, height)

	x := p.x + r.Theme.Padding
	y := p.y + 6
	y = r.DrawSectionHeader(x, y, "System Performance")
	y = r.DrawLabelValue(x, y, "Tick", stats.AvgTickDuration.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "TPS", fmt.Sprintf("%.0f", stats.TicksPerSecond))

	for _, row := range rows {
		color := rl.LightGray
		if row.Pct > 40 {
			color = rl.Red
		} else if row.Pct > 20 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-16s %8s %5.1f%%", row.Name, row.Avg.Round(time.Microsecond), row.Pct),
			x, y, 12, color,
		)
		y += r.Theme.LineHeight - 2
	}
}
