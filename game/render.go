package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/washer/camera"
	"github.com/pthm-cable/washer/components"
	"github.com/pthm-cable/washer/ui"
)

var (
	colorObstacle  = rl.Color{R: 26, G: 26, B: 26, A: 255}
	colorOutline   = rl.Color{R: 70, G: 70, B: 70, A: 255}
	colorPlayer    = rl.White
	colorPorthole  = rl.Color{R: 40, G: 60, B: 90, A: 255}
	colorAccessory = rl.Color{R: 87, G: 184, B: 166, A: 255}
	colorPixel     = rl.Color{R: 200, G: 200, B: 200, A: 255}
	colorGround    = rl.Color{R: 50, G: 50, B: 50, A: 255}
)

// initRendering creates the canvas render texture and UI panels. Requires
// an open raylib window.
func (g *Game) initRendering() {
	cv := g.cfg.Canvas
	g.camera = camera.New(float32(cv.Width), float32(cv.Height),
		float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))

	g.canvas = rl.LoadRenderTexture(int32(cv.Width), int32(cv.Height))
	rl.SetTextureFilter(g.canvas.Texture, rl.FilterPoint)

	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel(10, 110)
	g.tuning = ui.NewTuningPanel()
}

// Draw renders the world into the pixel canvas, scales it into the window
// and draws the UI on top.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginTextureMode(g.canvas)
	rl.ClearBackground(rl.Black)
	g.drawDecor()
	g.drawGround()
	g.drawObstacles()
	g.drawPlayer()
	g.drawAccessories()
	rl.EndTextureMode()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	x, y, w, h := g.camera.Dest()
	// Render textures are stored upside down.
	src := rl.Rectangle{Width: float32(g.canvas.Texture.Width), Height: -float32(g.canvas.Texture.Height)}
	rl.DrawTexturePro(g.canvas.Texture, src, rl.Rectangle{X: x, Y: y, Width: w, Height: h}, rl.Vector2{}, 0, rl.White)

	g.drawUI()

	rl.EndDrawing()
}

func (g *Game) toCanvas(v components.Vec2) rl.Vector2 {
	cx, cy := g.camera.WorldToCanvas(v.X, v.Y)
	return rl.Vector2{X: cx, Y: cy}
}

func (g *Game) drawDecor() {
	minX, minY, maxX, maxY := g.camera.VisibleWorldBounds()
	g.decor.Each(func(pos components.Vec2) {
		if pos.X < minX || pos.X > maxX || pos.Y < minY || pos.Y > maxY {
			return
		}
		rl.DrawPixelV(g.toCanvas(pos), colorPixel)
	})
}

// drawGround draws the line the player rests on (bottom of the collider).
func (g *Game) drawGround() {
	groundTop := g.kin.GroundY - g.player.Radius()
	_, cy := g.camera.WorldToCanvas(0, groundTop)
	rl.DrawLineV(rl.Vector2{X: 0, Y: cy}, rl.Vector2{X: g.camera.CanvasW, Y: cy}, colorGround)
}

func (g *Game) drawObstacles() {
	for _, c := range g.layout.Circles {
		r := c.Size / 2
		if !g.camera.IsVisible(c.Pos.X, c.Pos.Y, r) {
			continue
		}
		center := g.toCanvas(c.Pos)
		rl.DrawCircleV(center, r, colorObstacle)
		rl.DrawCircleLines(int32(center.X), int32(center.Y), r, colorOutline)
	}
	for _, r := range g.layout.Rects {
		half := r.HalfExtent()
		topLeft := g.toCanvas(components.Vec2{X: r.Pos.X - half, Y: r.Pos.Y + half})
		rect := rl.Rectangle{X: topLeft.X, Y: topLeft.Y, Width: r.Size, Height: r.Size}
		rl.DrawRectangleRec(rect, colorObstacle)
		rl.DrawRectangleLinesEx(rect, 1, colorOutline)
	}
}

// drawPlayer draws the washing machine: a body square with a porthole.
func (g *Game) drawPlayer() {
	p := g.player
	half := p.Radius()
	topLeft := g.toCanvas(components.Vec2{X: p.Pos.X - half, Y: p.Pos.Y + half})
	rl.DrawRectangleRec(rl.Rectangle{X: topLeft.X, Y: topLeft.Y, Width: p.Size, Height: p.Size}, colorPlayer)
	rl.DrawCircleV(g.toCanvas(p.Pos), half/2, colorPorthole)
}

func (g *Game) drawAccessories() {
	for _, a := range g.accessories {
		rl.DrawCircleV(g.toCanvas(a.Pos), a.Size/2, colorAccessory)
	}
}

func (g *Game) drawUI() {
	p := g.player
	g.hud.Draw(ui.HUDData{
		MapLabel: g.MapLabel(),
		Tick:     g.tick,
		Steps:    g.stepsPerUpdate,
		FPS:      rl.GetFPS(),
		Paused:   g.paused,
		Airborne: p.Airborne,
		Pos:      p.Pos,
		Vel:      p.Vel,
		VelXMod:  p.VelXMod,
		Scheme:   g.scheme.JumpSource.String() + " / " + g.scheme.Order.String(),
	})
	g.hud.DrawControls(int32(rl.GetScreenHeight()),
		"Move: arrows/AD | Jump: space | [P] pause [N] step | [<>] speed | [R] reset | [Tab] tuning | [F3] perf")

	if g.showPerf {
		g.perfPanel.Draw(g.perfCollector.Stats(), g.registry)
	}
	if g.showTuning {
		g.tuning.Draw(int32(rl.GetScreenWidth()), &g.kin, &g.scheme)
	}
}
