package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/washer/components"
)

// DecorSystem owns the decorative background pixels. They live in an ECS
// world of their own; the physics core never sees them.
type DecorSystem struct {
	spawner *ecs.Map3[components.Vec2, components.Flicker, components.BackgroundPixel]
	flicker *ecs.Filter2[components.Vec2, components.Flicker]
	pixels  *ecs.Filter2[components.Vec2, components.BackgroundPixel]
}

// NewDecorSystem creates a decor system bound to w.
func NewDecorSystem(w *ecs.World) *DecorSystem {
	return &DecorSystem{
		spawner: ecs.NewMap3[components.Vec2, components.Flicker, components.BackgroundPixel](w),
		flicker: ecs.NewFilter2[components.Vec2, components.Flicker](w),
		pixels:  ecs.NewFilter2[components.Vec2, components.BackgroundPixel](w),
	}
}

// SpawnPixels creates n background pixels with integer coordinates in
// [-spread, spread) on both axes.
func (s *DecorSystem) SpawnPixels(rng *rand.Rand, n int, spread int, fl components.Flicker) {
	for i := 0; i < n; i++ {
		pos := components.Vec2{
			X: float32(rng.Intn(2*spread) - spread),
			Y: float32(rng.Intn(2*spread) - spread),
		}
		f := fl
		s.spawner.NewEntity(&pos, &f, &components.BackgroundPixel{})
	}
}

// Update relocates each flickering entity to a random x with a one in
// Chance probability.
func (s *DecorSystem) Update(rng *rand.Rand) {
	query := s.flicker.Query()
	for query.Next() {
		pos, fl := query.Get()
		if fl.Chance <= 0 || rng.Int31n(fl.Chance) != 0 {
			continue
		}
		span := int(fl.MaxX - fl.MinX)
		if span <= 0 {
			continue
		}
		pos.X = fl.MinX + float32(rng.Intn(span))
	}
}

// Each calls fn with the position of every background pixel.
func (s *DecorSystem) Each(fn func(pos components.Vec2)) {
	query := s.pixels.Query()
	for query.Next() {
		pos, _ := query.Get()
		fn(*pos)
	}
}
