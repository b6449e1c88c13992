package systems

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/washer/components"
)

func TestDecorSpawnPixels(t *testing.T) {
	decor := NewDecorSystem(ecs.NewWorld())
	rng := rand.New(rand.NewSource(1))

	decor.SpawnPixels(rng, 100, 90, components.Flicker{Chance: 20, MinX: -200, MaxX: 200})

	count := 0
	decor.Each(func(pos components.Vec2) {
		count++
		if pos.X < -90 || pos.X >= 90 || pos.Y < -90 || pos.Y >= 90 {
			t.Errorf("pixel %+v outside spawn square", pos)
		}
	})
	if count != 100 {
		t.Errorf("pixel count = %d, want 100", count)
	}
}

func TestDecorFlicker(t *testing.T) {
	decor := NewDecorSystem(ecs.NewWorld())
	rng := rand.New(rand.NewSource(2))

	decor.SpawnPixels(rng, 50, 90, components.Flicker{Chance: 1, MinX: -200, MaxX: 200})

	var before []components.Vec2
	decor.Each(func(pos components.Vec2) { before = append(before, pos) })

	decor.Update(rng)

	i, moved := 0, 0
	decor.Each(func(pos components.Vec2) {
		if pos.Y != before[i].Y {
			t.Errorf("pixel %d changed Y: %v -> %v", i, before[i].Y, pos.Y)
		}
		if pos.X < -200 || pos.X >= 200 {
			t.Errorf("pixel %d flickered out of range: %v", i, pos.X)
		}
		if pos.X != before[i].X {
			moved++
		}
		i++
	})
	// Chance 1 relocates every pixel; a handful may land on their old x.
	if moved < 40 {
		t.Errorf("only %d of 50 pixels moved with Chance=1", moved)
	}
}

func TestDecorFlickerDisabled(t *testing.T) {
	decor := NewDecorSystem(ecs.NewWorld())
	rng := rand.New(rand.NewSource(3))

	decor.SpawnPixels(rng, 10, 90, components.Flicker{Chance: 0, MinX: -200, MaxX: 200})

	var before []components.Vec2
	decor.Each(func(pos components.Vec2) { before = append(before, pos) })
	for tick := 0; tick < 100; tick++ {
		decor.Update(rng)
	}

	i := 0
	decor.Each(func(pos components.Vec2) {
		if pos != before[i] {
			t.Errorf("pixel %d moved with flicker disabled", i)
		}
		i++
	})
}
