package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TickSample is one row of trace.csv: the player state after a tick.
type TickSample struct {
	Tick           int64   `csv:"tick"`
	X              float32 `csv:"x"`
	Y              float32 `csv:"y"`
	VelX           float32 `csv:"vel_x"`
	VelY           float32 `csv:"vel_y"`
	Airborne       bool    `csv:"airborne"`
	Map            int32   `csv:"map"`
	CircleContacts int     `csv:"circle_contacts"`
	RectContacts   int     `csv:"rect_contacts"`
	Jumped         bool    `csv:"jumped"`
}

// Transition is one row of transitions.csv.
type Transition struct {
	Tick int64 `csv:"tick"`
	From int32 `csv:"from"`
	To   int32 `csv:"to"`
}

// Summary aggregates a whole run.
type Summary struct {
	Ticks        int
	Jumps        int
	Transitions  int
	Contacts     int
	AirborneFrac float64
	MaxHeight    float64
	MeanSpeedX   float64
	TickUSMean   float64
	TickUSP50    float64
	TickUSP95    float64
	FinalMap     int32
	DistinctMaps int
}

// Summarize computes run statistics from trace samples and tick timings
// (microseconds). Either slice may be empty.
func Summarize(samples []TickSample, tickUS []float64) Summary {
	s := Summary{Ticks: len(samples)}

	if len(samples) > 0 {
		heights := make([]float64, len(samples))
		speeds := make([]float64, len(samples))
		airborne := 0
		maps := make(map[int32]struct{})
		for i, smp := range samples {
			heights[i] = float64(smp.Y)
			speeds[i] = float64(abs32(smp.VelX))
			if smp.Airborne {
				airborne++
			}
			if smp.Jumped {
				s.Jumps++
			}
			if i > 0 && smp.Map != samples[i-1].Map {
				s.Transitions++
			}
			s.Contacts += smp.CircleContacts + smp.RectContacts
			maps[smp.Map] = struct{}{}
		}
		s.AirborneFrac = float64(airborne) / float64(len(samples))
		s.MaxHeight = floats.Max(heights)
		s.MeanSpeedX = stat.Mean(speeds, nil)
		s.FinalMap = samples[len(samples)-1].Map
		s.DistinctMaps = len(maps)
	}

	if len(tickUS) > 0 {
		sorted := append([]float64(nil), tickUS...)
		sort.Float64s(sorted)
		s.TickUSMean = stat.Mean(sorted, nil)
		s.TickUSP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		s.TickUSP95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("ticks", s.Ticks),
		slog.Int("jumps", s.Jumps),
		slog.Int("transitions", s.Transitions),
		slog.Int("contacts", s.Contacts),
		slog.Float64("airborne_frac", s.AirborneFrac),
		slog.Float64("max_height", s.MaxHeight),
		slog.Float64("mean_speed_x", s.MeanSpeedX),
		slog.Float64("tick_us_mean", s.TickUSMean),
		slog.Float64("tick_us_p50", s.TickUSP50),
		slog.Float64("tick_us_p95", s.TickUSP95),
		slog.Int("final_map", int(s.FinalMap)),
		slog.Int("distinct_maps", s.DistinctMaps),
	)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
