// Package director hosts the running scene. It queues pointer events between
// frames, drives the scene one frame at a time and applies scene switches
// once the frame that requested them has finished.
package director

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/registry"
)

// ErrNoScene is returned when a frame is requested before any scene runs.
var ErrNoScene = errors.New("director: no scene running")

// Director owns the current scene and implements registry.Director.
// Push may be called from any goroutine; everything else belongs to the
// frame loop.
type Director struct {
	env       registry.Env
	logger    *log.Logger
	scene     registry.Scene
	pending   string
	suspended bool

	mu     sync.Mutex
	events core.InputFrame
}

// New creates a director. Scenes it creates receive env with the director
// itself as their Director.
func New(env registry.Env) *Director {
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}
	d := &Director{
		logger: env.Logger,
		events: core.NewInputFrame(),
	}
	env.Director = d
	d.env = env
	return d
}

// Start creates scene id, initializes it and makes it current.
func (d *Director) Start(id string) error {
	scene, err := registry.Create(id, d.env)
	if err != nil {
		return fmt.Errorf("start scene: %w", err)
	}
	d.switchTo(scene)
	return nil
}

// RunScene requests a switch to scene id after the current frame.
func (d *Director) RunScene(id string) {
	d.pending = id
}

// Scene returns the current scene, or nil before Start.
func (d *Director) Scene() registry.Scene {
	return d.scene
}

// ViewSize returns the current scene's canvas size.
func (d *Director) ViewSize() (float64, float64) {
	if d.scene == nil {
		return 0, 0
	}
	return d.scene.ViewSize()
}

// Push queues a pointer event for the next frame.
func (d *Director) Push(ev core.Event) {
	d.mu.Lock()
	d.events.Push(ev)
	d.mu.Unlock()
}

// Suspend freezes the current scene and any scene switched to later.
func (d *Director) Suspend() {
	d.suspended = true
	if d.scene != nil {
		d.scene.Suspend()
	}
}

// Resume unfreezes the current scene.
func (d *Director) Resume() {
	d.suspended = false
	if d.scene != nil {
		d.scene.Resume()
	}
}

// Suspended reports whether the director is holding scenes frozen.
func (d *Director) Suspended() bool {
	return d.suspended
}

// Frame runs one frame: queued events in arrival order, Update, Render and
// finally any scene switch requested during the frame. Events queued while
// suspended are discarded.
func (d *Director) Frame(dt float64, dst core.Surface) error {
	if d.scene == nil {
		return ErrNoScene
	}

	var frame core.InputFrame
	dropped := 0
	d.mu.Lock()
	if d.suspended {
		dropped = d.events.Len()
		d.events.Clear()
	} else {
		frame = d.events
		d.events = core.NewInputFrame()
	}
	d.mu.Unlock()

	if dropped > 0 {
		d.logger.Debug("input dropped while suspended", "scene", d.scene.ID(), "events", dropped)
	}
	frame.Drain(d.scene.Handle)
	d.scene.Update(dt)
	d.scene.Render(dst)

	if d.pending == "" {
		return nil
	}

	id := d.pending
	d.pending = ""
	next, err := registry.Create(id, d.env)
	if err != nil {
		d.logger.Error("scene switch failed", "from", d.scene.ID(), "to", id, "err", err)
		return fmt.Errorf("switch scene: %w", err)
	}
	d.logger.Info("scene switch", "from", d.scene.ID(), "to", id)
	d.switchTo(next)
	return nil
}

func (d *Director) switchTo(scene registry.Scene) {
	if d.scene != nil {
		d.scene.Suspend()
	}
	scene.Initialize()
	if !d.suspended {
		scene.Resume()
	}
	d.scene = scene
}
