// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing hosts to
// discover and instantiate scenes without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-scene/internal/assets"
	"github.com/vovakirdan/flappy-scene/internal/core"
)

// ErrUnknownScene is returned by Create for an id nobody registered.
var ErrUnknownScene = errors.New("registry: unknown scene")

// Scene is the lifecycle contract every scene implements.
// Scenes contain pure logic with no platform dependencies; the host drives
// them one frame at a time and supplies graphics through Env.
type Scene interface {
	// ID returns the unique identifier used for registration and transitions.
	ID() string

	// ViewSize returns the logical canvas size in canvas units.
	ViewSize() (w, h float64)

	// Initialize (re)starts the scene from scratch. It may be called again
	// on an already initialized scene and always succeeds.
	Initialize() bool

	// Suspend freezes the scene; Update and Render become no-ops.
	Suspend()

	// Resume unfreezes a suspended scene.
	Resume()

	// Handle delivers one pointer event. Hosts call it before Update.
	Handle(ev core.Event)

	// Update advances the scene by dt seconds.
	Update(dt float64)

	// Render draws the current frame onto dst.
	Render(dst core.Surface)
}

// Director switches the running scene. RunScene is a request: hosts apply it
// after the current frame completes.
type Director interface {
	RunScene(id string)
}

// Env carries the collaborators a scene is created with.
type Env struct {
	Graphics assets.GraphicsProvider
	Director Director
	Rand     *rand.Rand
	Logger   *log.Logger

	// Timer is shared by every scene created from this Env when set.
	// Hosts usually leave it nil so each scene gets its own from NewTimer.
	Timer    core.Timer
	NewTimer func() core.Timer
}

// WithDefaults fills unset collaborators with working stand-ins.
// Graphics and Director stay nil when unset; scenes tolerate that.
func (e Env) WithDefaults() Env {
	if e.Rand == nil {
		e.Rand = core.DefaultConfig().NewRand()
	}
	if e.Timer == nil {
		if e.NewTimer != nil {
			e.Timer = e.NewTimer()
		} else {
			e.Timer = core.NewFrameTimer()
		}
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory creates a new scene instance bound to env.
type Factory func(env Env) Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene package's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
func Create(id string, env Env) (Scene, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	return f(env.WithDefaults()), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
