package telemetry

import (
	"math"
	"testing"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.Ticks != 0 || s.MaxHeight != 0 || s.TickUSMean != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestSummarizeSamples(t *testing.T) {
	samples := []TickSample{
		{Tick: 0, Y: -91, Map: 1},
		{Tick: 1, Y: -87, VelX: 2, Airborne: true, Map: 1, Jumped: true},
		{Tick: 2, Y: -80, VelX: -2, Airborne: true, Map: 1, CircleContacts: 1},
		{Tick: 3, Y: 0, Map: 2},
		{Tick: 4, Y: -91, Map: 2, RectContacts: 2},
	}

	s := Summarize(samples, nil)

	tests := []struct {
		name      string
		got, want float64
	}{
		{"ticks", float64(s.Ticks), 5},
		{"jumps", float64(s.Jumps), 1},
		{"transitions", float64(s.Transitions), 1},
		{"contacts", float64(s.Contacts), 3},
		{"airborne_frac", s.AirborneFrac, 0.4},
		{"max_height", s.MaxHeight, 0},
		{"mean_speed_x", s.MeanSpeedX, 0.8},
		{"final_map", float64(s.FinalMap), 2},
		{"distinct_maps", float64(s.DistinctMaps), 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if math.Abs(tc.got-tc.want) > 1e-9 {
				t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestSummarizeTickTimings(t *testing.T) {
	// Unsorted input must not matter.
	tickUS := []float64{50, 10, 40, 20, 30, 60, 70, 80, 90, 100}

	s := Summarize(nil, tickUS)

	if math.Abs(s.TickUSMean-55) > 1e-9 {
		t.Errorf("mean = %v, want 55", s.TickUSMean)
	}
	if s.TickUSP50 != 50 {
		t.Errorf("p50 = %v, want 50", s.TickUSP50)
	}
	if s.TickUSP95 != 100 {
		t.Errorf("p95 = %v, want 100", s.TickUSP95)
	}
	if tickUS[0] != 50 {
		t.Error("Summarize sorted the caller's slice")
	}
}
