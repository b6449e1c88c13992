package components

// BackgroundPixel tags a decorative star/dust pixel.
type BackgroundPixel struct{}

// Flicker makes an entity jump to a random x once in Chance ticks on average.
type Flicker struct {
	Chance     int32
	MinX, MaxX float32
}
