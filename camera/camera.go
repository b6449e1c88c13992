// Package camera maps world coordinates onto a low-resolution pixel-art
// canvas and fits that canvas into the window.
package camera

import "math"

// Camera controls the viewport into the world.
// The world is y-up with the origin at the canvas center; the canvas is
// y-down with the origin at its top-left corner.
type Camera struct {
	// Position is the world point shown at the canvas center
	X, Y float32

	// Canvas dimensions in pixels
	CanvasW, CanvasH float32

	// Window dimensions
	WindowW, WindowH float32

	// Scale is the integer upscale factor from canvas to window
	Scale float32
}

// New creates a camera centered on the world origin and fits the canvas
// into the window.
func New(canvasW, canvasH, windowW, windowH float32) *Camera {
	c := &Camera{
		CanvasW: canvasW,
		CanvasH: canvasH,
	}
	c.Resize(windowW, windowH)
	return c
}

// WorldToCanvas converts world coordinates to canvas pixel coordinates.
func (c *Camera) WorldToCanvas(wx, wy float32) (cx, cy float32) {
	cx = c.CanvasW/2 + (wx - c.X)
	cy = c.CanvasH/2 - (wy - c.Y)
	return cx, cy
}

// CanvasToWorld converts canvas pixel coordinates to world coordinates.
func (c *Camera) CanvasToWorld(cx, cy float32) (wx, wy float32) {
	wx = cx - c.CanvasW/2 + c.X
	wy = c.CanvasH/2 - cy + c.Y
	return wx, wy
}

// WindowToWorld converts a window position (e.g. the mouse) to world coordinates.
func (c *Camera) WindowToWorld(sx, sy float32) (wx, wy float32) {
	ox, oy, _, _ := c.Dest()
	return c.CanvasToWorld((sx-ox)/c.Scale, (sy-oy)/c.Scale)
}

// Dest returns the window rectangle the canvas is drawn into: integer
// scaled and centered, with letterbox bars on the remaining sides.
func (c *Camera) Dest() (x, y, w, h float32) {
	w = c.CanvasW * c.Scale
	h = c.CanvasH * c.Scale
	x = float32(math.Floor(float64(c.WindowW-w) / 2))
	y = float32(math.Floor(float64(c.WindowH-h) / 2))
	return x, y, w, h
}

// IsVisible returns true if a shape at (wx, wy) with the given radius
// could be visible on the canvas (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.CanvasW/2 + radius
	halfH := c.CanvasH/2 + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Resize updates window dimensions and recomputes the integer scale.
func (c *Camera) Resize(windowW, windowH float32) {
	c.WindowW = windowW
	c.WindowH = windowH
	c.Scale = fitScale(c.CanvasW, c.CanvasH, windowW, windowH)
}

// VisibleWorldBounds returns the world-coordinate bounds of the canvas.
// Returns (minX, minY, maxX, maxY) in world coordinates.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	minX = c.X - c.CanvasW/2
	maxX = c.X + c.CanvasW/2
	minY = c.Y - c.CanvasH/2
	maxY = c.Y + c.CanvasH/2
	return
}

// fitScale returns the largest whole multiple of the canvas that fits the
// window, never less than 1.
func fitScale(canvasW, canvasH, windowW, windowH float32) float32 {
	if canvasW <= 0 || canvasH <= 0 {
		return 1
	}
	s := float32(math.Floor(float64(min(windowW/canvasW, windowH/canvasH))))
	if s < 1 {
		return 1
	}
	return s
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
