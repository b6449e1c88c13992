package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/washer/systems"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Physics.GroundY != -91 {
		t.Errorf("ground_y = %v, want -91", cfg.Physics.GroundY)
	}
	if cfg.Physics.WrapBound != 220 || cfg.Physics.ClampBound != 200 {
		t.Errorf("bounds = %v/%v, want 220/200", cfg.Physics.WrapBound, cfg.Physics.ClampBound)
	}
	if cfg.Player.Size != 20 || cfg.Player.Map != 1 {
		t.Errorf("player = %+v", cfg.Player)
	}
	if len(cfg.Accessories) != 2 {
		t.Errorf("accessories = %d, want 2", len(cfg.Accessories))
	}

	k := cfg.Derived.Kinematics
	if k.Gravity != 0.1 || k.GroundY != -91 || !k.Drag {
		t.Errorf("derived kinematics = %+v", k)
	}
	s := cfg.Derived.Scheme
	if s.JumpSource != systems.JumpKeyboard || s.Order != systems.ResolveAfterIntegrate || s.JumpPower != 4 {
		t.Errorf("derived scheme = %+v", s)
	}
	if cfg.Derived.CanvasScale != 3 {
		t.Errorf("canvas scale = %d, want 3 for 1200x675 over 400x225", cfg.Derived.CanvasScale)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := `
control:
  jump_source: accessory
  collision_order: before_controls
physics:
  gravity: 0.2
`
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load overlay: %v", err)
	}

	if cfg.Derived.Scheme.JumpSource != systems.JumpAccessory {
		t.Errorf("jump source = %v, want accessory", cfg.Derived.Scheme.JumpSource)
	}
	if cfg.Derived.Scheme.Order != systems.ResolveBeforeControls {
		t.Errorf("collision order = %v, want before_controls", cfg.Derived.Scheme.Order)
	}
	if cfg.Derived.Kinematics.Gravity != 0.2 {
		t.Errorf("gravity = %v, want 0.2", cfg.Derived.Kinematics.Gravity)
	}
	// Untouched sections keep their defaults.
	if cfg.Control.JumpPower != 4 || cfg.Physics.GroundY != -91 {
		t.Errorf("overlay clobbered defaults: %+v %+v", cfg.Control, cfg.Physics)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
		wantErr string
	}{
		{"unknown jump source", "control:\n  jump_source: mouse\n", "jump_source"},
		{"unknown collision order", "control:\n  collision_order: whenever\n", "collision_order"},
		{"non-positive size", "player:\n  size: 0\n", "player.size"},
		{"clamp wider than wrap", "physics:\n  clamp_bound: 300\n", "clamp_bound"},
		{"zero decor spread", "decor:\n  spread: 0\n", "decor.spread"},
		{"malformed yaml", "physics: [\n", "parsing config file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.overlay), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Control.JumpPower = 5.5
	cfg.Obstacles.Rects.Count = 9

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if loaded.Control.JumpPower != 5.5 || loaded.Obstacles.Rects.Count != 9 {
		t.Errorf("round trip lost edits: %+v %+v", loaded.Control, loaded.Obstacles.Rects)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()

	defer func() {
		if recover() == nil {
			t.Error("Cfg() before Init() should panic")
		}
	}()
	Cfg()
}
