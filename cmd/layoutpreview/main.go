// Layout preview tool - interactive view of the obstacle layout generated
// for a seed and map index, with sliders for the layout parameters.
//
// Usage: go run ./cmd/layoutpreview [--config path]
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/washer/camera"
	"github.com/pthm-cable/washer/config"
	"github.com/pthm-cable/washer/game"
)

const (
	windowWidth  = 1200
	windowHeight = 720
	previewW     = 880
	previewH     = 450
	panelWidth   = windowWidth - previewW - 30
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	defaults := cfg.Obstacles

	rl.InitWindow(windowWidth, windowHeight, "Layout Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	// The world strip between the wrap bounds, centered like the game canvas.
	wrap := float32(cfg.Physics.WrapBound)
	cam := camera.New(2*wrap, float32(cfg.Canvas.Height), previewW, previewH)
	ground := float32(cfg.Physics.GroundY)
	playerR := float32(cfg.Player.Size) / 2

	params := defaults
	var seed int64 = 1
	var mapIndex int32 = 1
	layout := game.GenerateLayout(params, seed, mapIndex)
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			layout = game.GenerateLayout(params, seed, mapIndex)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		ox, oy, _, _ := cam.Dest()
		ox += 10
		oy += 10
		toScreen := func(wx, wy float32) rl.Vector2 {
			cx, cy := cam.WorldToCanvas(wx, wy)
			return rl.Vector2{X: ox + cx*cam.Scale, Y: oy + cy*cam.Scale}
		}

		// Preview
		rl.DrawRectangle(int32(ox), int32(oy), int32(cam.CanvasW*cam.Scale), int32(cam.CanvasH*cam.Scale), rl.Black)
		g0 := toScreen(-wrap, ground-playerR)
		g1 := toScreen(wrap, ground-playerR)
		rl.DrawLineV(g0, g1, rl.DarkGray)
		for _, c := range layout.Circles {
			rl.DrawCircleV(toScreen(c.Pos.X, c.Pos.Y), c.Size/2*cam.Scale, rl.Color{R: 60, G: 60, B: 60, A: 255})
		}
		for _, r := range layout.Rects {
			tl := toScreen(r.Pos.X-r.HalfExtent(), r.Pos.Y+r.HalfExtent())
			rl.DrawRectangleV(tl, rl.Vector2{X: r.Size * cam.Scale, Y: r.Size * cam.Scale}, rl.Color{R: 120, G: 90, B: 60, A: 255})
		}
		spawn := toScreen(float32(cfg.Player.SpawnX), ground)
		rl.DrawCircleLines(int32(spawn.X), int32(spawn.Y), playerR*cam.Scale, rl.White)

		rl.DrawText(fmt.Sprintf("Map %d  seed %d  circles %d  rects %d",
			mapIndex, seed, len(layout.Circles), len(layout.Rects)), 15, previewH+30, 16, rl.DarkGray)

		mouse := rl.GetMousePosition()
		mx, my := cam.WindowToWorld(mouse.X-10, mouse.Y-10)
		if mx >= -wrap && mx <= wrap {
			rl.DrawText(fmt.Sprintf("Mouse: (%.0f, %.0f)", mx, my), 15, previewH+52, 14, rl.Gray)
		}

		// Control panel
		panelX := float32(previewW + 20)
		panelY := float32(10)

		rl.DrawText("Layout Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		intSlider := func(label string, value *int, lo, hi int) {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				float32(*value), float32(lo), float32(hi),
			)
			rl.DrawText(fmt.Sprintf("%d", *value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if int(v) != *value {
				*value = int(v)
				needsRegen = true
			}
			panelY += 32
		}

		s := int(seed)
		intSlider("Seed", &s, 0, 9999)
		seed = int64(s)
		m := int(mapIndex)
		intSlider("Map index", &m, -20, 20)
		mapIndex = int32(m)
		intSlider("Circle count", &params.Circles.Count, 0, 200)
		intSlider("Circle min size", &params.Circles.MinSize, 2, 80)
		intSlider("Circle max size", &params.Circles.MaxSize, 3, 100)
		intSlider("Rect count", &params.Rects.Count, 0, 30)
		intSlider("Rect size", &params.Rects.Size, 2, 60)
		if params.Circles.MaxSize <= params.Circles.MinSize {
			params.Circles.MaxSize = params.Circles.MinSize + 1
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Prev Map") {
			mapIndex--
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Next Map") {
			mapIndex++
			needsRegen = true
		}
		panelY += 40
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = int64(rl.GetRandomValue(0, 9999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			seed = 1
			mapIndex = 1
			needsRegen = true
		}
		panelY += 45

		// Output YAML
		yamlText := obstaclesYAML(params)
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range strings.Split(strings.TrimRight(yamlText, "\n"), "\n") {
			if panelY > windowHeight-40 {
				break
			}
			rl.DrawText(line, int32(panelX), int32(panelY), 12, rl.Gray)
			panelY += 14
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText)
		}

		rl.EndDrawing()
	}
}

// obstaclesYAML renders the obstacles section as it appears in config.yaml.
func obstaclesYAML(o config.ObstaclesConfig) string {
	data, err := yaml.Marshal(map[string]config.ObstaclesConfig{"obstacles": o})
	if err != nil {
		return "error: " + err.Error()
	}
	return string(data)
}
