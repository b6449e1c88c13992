package systems

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "core", "visual", "ai")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	// Player control
	r.Register(SystemInfo{ID: "orbit", Name: "Orbit", Description: "Advances accessories and publishes the jump bias", Category: "control"})
	r.Register(SystemInfo{ID: "controls", Name: "Controls", Description: "Applies input to player velocity", Category: "control"})

	// Physics
	r.Register(SystemInfo{ID: "integrate", Name: "Integrate", Description: "Gravity, drag, ground clamp and world wrap", Category: "physics"})
	r.Register(SystemInfo{ID: "mapTransition", Name: "Map Transition", Description: "Provisions obstacles for a new map index", Category: "world"})
	r.Register(SystemInfo{ID: "resolveCircles", Name: "Circle Collision", Description: "Pushes the player out of circular obstacles", Category: "physics"})
	r.Register(SystemInfo{ID: "resolveRects", Name: "Rect Collision", Description: "Pushes the player out of square obstacles", Category: "physics"})

	// Visual
	r.Register(SystemInfo{ID: "decor", Name: "Decor", Description: "Flickers background pixels", Category: "visual"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
