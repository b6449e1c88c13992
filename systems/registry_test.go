package systems

import "testing"

func TestRegistryDefaults(t *testing.T) {
	reg := NewSystemRegistry()

	want := []string{"orbit", "controls", "integrate", "mapTransition", "resolveCircles", "resolveRects", "decor"}
	ids := reg.IDs()
	if len(ids) != len(want) {
		t.Fatalf("got %d systems, want %d", len(ids), len(want))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], id)
		}
	}
}

func TestRegistryGetName(t *testing.T) {
	reg := NewSystemRegistry()

	tests := []struct {
		id, want string
	}{
		{"resolveCircles", "Circle Collision"},
		{"integrate", "Integrate"},
		{"unknown", "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			if got := reg.GetName(tc.id); got != tc.want {
				t.Errorf("GetName(%q) = %q, want %q", tc.id, got, tc.want)
			}
		})
	}

	if _, ok := reg.Get("decor"); !ok {
		t.Error("Get(decor) not found")
	}
}
