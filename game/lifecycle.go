package game

import (
	"math/rand"

	"github.com/pthm-cable/washer/components"
	"github.com/pthm-cable/washer/config"
)

// Layout is the obstacle set of one map. It is generated once and never
// mutated afterwards.
type Layout struct {
	Map     int32
	Circles []components.CircleObstacle
	Rects   []components.RectObstacle
}

// GenerateLayout builds the obstacles for map m. The same seed and map
// index always produce the same layout.
func GenerateLayout(cfg config.ObstaclesConfig, seed int64, m int32) *Layout {
	rng := rand.New(rand.NewSource(seed*31 + int64(m)))

	c := cfg.Circles
	circles := make([]components.CircleObstacle, 0, c.Count)
	for i := 0; i < c.Count; i++ {
		circles = append(circles, components.CircleObstacle{
			Size: randRange(rng, c.MinSize, c.MaxSize),
			Pos: components.Vec2{
				X: randRange(rng, c.MinX, c.MaxX),
				Y: randRange(rng, c.MinY, c.MaxY),
			},
		})
	}

	r := cfg.Rects
	rects := make([]components.RectObstacle, 0, r.Count)
	for i := 0; i < r.Count; i++ {
		rects = append(rects, components.RectObstacle{
			Size: float32(r.Size),
			Pos: components.Vec2{
				X: randRange(rng, r.MinX, r.MaxX),
				Y: randRange(rng, r.MinY, r.MaxY),
			},
		})
	}

	return &Layout{Map: m, Circles: circles, Rects: rects}
}

// randRange returns an integer-valued float in [lo, hi). Empty ranges yield lo.
func randRange(rng *rand.Rand, lo, hi int) float32 {
	if hi <= lo {
		return float32(lo)
	}
	return float32(lo + rng.Intn(hi-lo))
}

// layoutFor returns the cached layout for map m, generating it on first use.
func (g *Game) layoutFor(m int32) *Layout {
	if l, ok := g.layouts[m]; ok {
		return l
	}
	l := GenerateLayout(g.cfg.Obstacles, g.seed, m)
	g.layouts[m] = l
	return l
}

// spawnWorld creates the player, its accessories, the starting map and the
// background pixels.
func (g *Game) spawnWorld() {
	pc := g.cfg.Player
	g.player = components.Player{
		Pos:  components.Vec2{X: float32(pc.SpawnX), Y: float32(pc.SpawnY)},
		Size: float32(pc.Size),
		Map:  pc.Map,
	}
	g.player.Airborne = g.player.Pos.Y > g.kin.GroundY

	g.accessories = g.accessories[:0]
	for _, ac := range g.cfg.Accessories {
		g.accessories = append(g.accessories, components.Accessory{
			Radius: float32(ac.Radius),
			Speed:  float32(ac.Speed),
			Size:   float32(ac.Size),
			Pos:    g.player.Pos,
		})
	}

	g.layout = g.layoutFor(g.player.Map)

	dc := g.cfg.Decor
	g.decor.SpawnPixels(g.rng, dc.Pixels, dc.Spread, components.Flicker{
		Chance: int32(dc.FlickerChance),
		MinX:   float32(dc.FlickerMinX),
		MaxX:   float32(dc.FlickerMaxX),
	})
}

// resetPlayer restores the spawn position and velocity, keeping the
// current map.
func (g *Game) resetPlayer() {
	pc := g.cfg.Player
	g.player.Pos = components.Vec2{X: float32(pc.SpawnX), Y: float32(pc.SpawnY)}
	g.player.Vel = components.Vec2{}
	g.player.VelXMod = 0
	g.player.Airborne = g.player.Pos.Y > g.kin.GroundY
	g.resets++
}
