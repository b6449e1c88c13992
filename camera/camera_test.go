package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(400, 225, 1200, 675)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Scale != 3 {
		t.Errorf("expected scale 3, got %f", cam.Scale)
	}
}

func TestWorldToCanvasOrientation(t *testing.T) {
	cam := New(400, 225, 1200, 675)

	testCases := []struct {
		name           string
		wx, wy, cx, cy float32
	}{
		{"origin at center", 0, 0, 200, 112.5},
		{"up is smaller canvas y", 0, 50, 200, 62.5},
		{"right is larger canvas x", 100, 0, 300, 112.5},
		{"ground plane", 0, -91, 200, 203.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := cam.WorldToCanvas(tc.wx, tc.wy)
			if math.Abs(float64(cx-tc.cx)) > 0.01 || math.Abs(float64(cy-tc.cy)) > 0.01 {
				t.Errorf("WorldToCanvas(%v,%v) = (%v,%v), want (%v,%v)", tc.wx, tc.wy, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestCanvasToWorldRoundtrip(t *testing.T) {
	cam := New(400, 225, 1200, 675)
	cam.X = 30

	testCases := []struct{ cx, cy float32 }{
		{200, 112.5},
		{0, 0},
		{399, 224},
	}
	for _, tc := range testCases {
		wx, wy := cam.CanvasToWorld(tc.cx, tc.cy)
		cx, cy := cam.WorldToCanvas(wx, wy)
		if math.Abs(float64(cx-tc.cx)) > 0.01 || math.Abs(float64(cy-tc.cy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.cx, tc.cy, wx, wy, cx, cy)
		}
	}
}

func TestFitScale(t *testing.T) {
	testCases := []struct {
		name          string
		windowW, winH float32
		scale         float32
		destX, destY  float32
	}{
		{"exact fit", 1200, 675, 3, 0, 0},
		{"wide window letterboxes sides", 1400, 675, 3, 100, 0},
		{"tall window letterboxes top", 800, 600, 2, 0, 75},
		{"window smaller than canvas", 300, 200, 1, -50, -13},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam := New(400, 225, tc.windowW, tc.winH)
			if cam.Scale != tc.scale {
				t.Errorf("scale = %v, want %v", cam.Scale, tc.scale)
			}
			x, y, _, _ := cam.Dest()
			if x != tc.destX || y != tc.destY {
				t.Errorf("dest offset = (%v,%v), want (%v,%v)", x, y, tc.destX, tc.destY)
			}
		})
	}
}

func TestWindowToWorld(t *testing.T) {
	cam := New(400, 225, 1400, 675)

	// Window center maps to world origin.
	wx, wy := cam.WindowToWorld(700, 337.5)
	if math.Abs(float64(wx)) > 0.01 || math.Abs(float64(wy)) > 0.01 {
		t.Errorf("expected origin, got (%f, %f)", wx, wy)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(400, 225, 1200, 675)

	if !cam.IsVisible(0, 0, 1) {
		t.Error("origin should be visible")
	}
	if !cam.IsVisible(205, 0, 10) {
		t.Error("circle overlapping the edge should be visible")
	}
	if cam.IsVisible(220, 0, 10) {
		t.Error("circle beyond the edge should be culled")
	}
}

func TestVisibleWorldBounds(t *testing.T) {
	cam := New(400, 225, 1200, 675)
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if minX != -200 || maxX != 200 || minY != -112.5 || maxY != 112.5 {
		t.Errorf("bounds = (%v,%v,%v,%v)", minX, minY, maxX, maxY)
	}
}
