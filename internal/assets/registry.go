package assets

import (
	"fmt"

	"github.com/vovakirdan/flappy-scene/internal/core"
)

// Registry maps asset identifiers to loaded textures.
// It accepts additions until frozen and is read-only afterwards.
type Registry struct {
	textures map[string]core.Texture
	frozen   bool
}

// NewRegistry creates an empty, writable registry.
func NewRegistry() *Registry {
	return &Registry{
		textures: make(map[string]core.Texture),
	}
}

// Add stores tex under id.
func (r *Registry) Add(id string, tex core.Texture) error {
	if r.frozen {
		return fmt.Errorf("add %q: %w", id, ErrRegistryFrozen)
	}
	r.textures[id] = tex
	return nil
}

// Get returns the texture registered under id.
func (r *Registry) Get(id string) (core.Texture, bool) {
	tex, ok := r.textures[id]
	return tex, ok
}

// Texture returns the texture for id or nil. Sprites built from a nil
// texture draw nothing.
func (r *Registry) Texture(id string) core.Texture {
	return r.textures[id]
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.textures)
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registry is read-only.
func (r *Registry) Frozen() bool {
	return r.frozen
}
