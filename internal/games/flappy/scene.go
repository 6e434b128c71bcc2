// Package flappy implements the Flappy Bird-style game scene.
// The player taps to rise between pairs of obstacles scrolling in from the
// right. Touching a border bar or an obstacle ends the round.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-scene/internal/assets"
	"github.com/vovakirdan/flappy-scene/internal/config"
	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/registry"
)

const (
	// SceneID is the registry id of the game scene.
	SceneID = "game"
	// MenuSceneID is the scene the exit button switches to.
	MenuSceneID = "menu"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

func init() {
	registry.Register(SceneID, "Flappy", func(env registry.Env) registry.Scene {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			if env.Logger != nil {
				env.Logger.Warn("using default game config", "err", err)
			}
			cfg = config.DefaultFlappyConfig()
		}
		if difficultyPreset != "" {
			config.ApplyFlappyPreset(&cfg, difficultyPreset)
		}
		return New(cfg, env)
	})
}

// spriteSlots names the sprites the simulation touches directly.
// They are created once when loading completes, in draw order.
type spriteSlots struct {
	topBar    *core.Sprite
	bottomBar *core.Sprite
	player    *core.Sprite
	pipes     ObstaclePair
	exit      *core.Sprite
}

// Scene implements the game scene.
type Scene struct {
	cfg config.FlappyConfig
	env registry.Env

	// Scene state
	state        State
	gameplay     Gameplay
	suspended    bool
	inputActive  bool // Player rises while set
	roundStarted bool // Pointer went down at least once this round
	rounds       int  // Rounds ended by a collision

	// Assets
	loader   *assets.Loader
	textures *assets.Registry

	// Sprites in creation (and draw) order; nil until running
	sprites []*core.Sprite
	slots   spriteSlots
}

// New creates a game scene. Missing collaborators in env get defaults.
func New(cfg config.FlappyConfig, env registry.Env) *Scene {
	s := &Scene{
		cfg: cfg,
		env: env.WithDefaults(),
	}
	s.Initialize()
	return s
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return SceneID
}

// ViewSize returns the fixed canvas size.
func (s *Scene) ViewSize() (float64, float64) {
	return s.cfg.Canvas.Width, s.cfg.Canvas.Height
}

// Initialize puts the scene back into loading with fresh state.
// The scene starts suspended; the host resumes it when it goes on screen.
func (s *Scene) Initialize() bool {
	s.state = StateLoading
	s.gameplay = GameplayUninitialized
	s.suspended = true
	s.inputActive = false
	s.roundStarted = false
	s.rounds = 0

	s.textures = assets.NewRegistry()
	s.loader = assets.NewLoader(s.cfg.Assets, s.env.Graphics, s.textures)
	s.sprites = nil
	s.slots = spriteSlots{}

	s.env.Timer.Reset()
	core.PauseTimer(s.env.Timer)
	return true
}

// Suspend freezes the scene, including a wall-clock timer.
func (s *Scene) Suspend() {
	if !s.suspended {
		s.env.Logger.Debug("scene suspended", "scene", SceneID)
	}
	s.suspended = true
	core.PauseTimer(s.env.Timer)
}

// Resume unfreezes the scene.
func (s *Scene) Resume() {
	if s.suspended {
		s.env.Logger.Debug("scene resumed", "scene", SceneID)
	}
	s.suspended = false
	core.UnpauseTimer(s.env.Timer)
}

// Handle applies one pointer event. Events are dropped unless running.
func (s *Scene) Handle(ev core.Event) {
	if s.state != StateRunning {
		return
	}

	switch ev.Kind {
	case core.EventPointerDown:
		s.pointerDown(ev.X, ev.Y)
	case core.EventPointerMove, core.EventPointerUp:
		// Only taps matter
	}
}

func (s *Scene) pointerDown(x, y float64) {
	if s.slots.exit != nil && s.slots.exit.Contains(x, y) {
		s.env.Logger.Info("exit tapped", "scene", SceneID, "next", MenuSceneID)
		if s.env.Director != nil {
			s.env.Director.RunScene(MenuSceneID)
		}
		return
	}

	s.inputActive = true
	s.roundStarted = true
	s.env.Timer.Reset()

	if s.gameplay == GameplayWaitingToStart {
		s.gameplay = GameplayPlaying
	}
}

// Update advances the scene by dt seconds. No-op while suspended.
func (s *Scene) Update(dt float64) {
	if s.suspended {
		return
	}

	if ticker, ok := s.env.Timer.(core.Ticker); ok {
		ticker.Tick(dt)
	}

	switch s.state {
	case StateLoading:
		s.loadTextures()
	case StateRunning:
		s.runSimulation(dt)
	case StateError:
	}
}

// State returns the coarse scene state.
func (s *Scene) State() State {
	return s.state
}

// Gameplay returns the round phase.
func (s *Scene) Gameplay() Gameplay {
	return s.gameplay
}

// Suspended reports whether the scene is frozen.
func (s *Scene) Suspended() bool {
	return s.suspended
}

// InputActive reports whether the player is currently rising.
func (s *Scene) InputActive() bool {
	return s.inputActive
}

// RoundStarted reports whether the current round received a tap.
func (s *Scene) RoundStarted() bool {
	return s.roundStarted
}

// Rounds returns how many rounds ended in a collision since Initialize.
func (s *Scene) Rounds() int {
	return s.rounds
}

// Sprites returns the live sprites in draw order.
func (s *Scene) Sprites() []*core.Sprite {
	return s.sprites
}

// Player returns the player sprite, or nil before running.
func (s *Scene) Player() *core.Sprite {
	return s.slots.player
}

// Obstacles returns the obstacle pair. Its sprites are nil before running.
func (s *Scene) Obstacles() *ObstaclePair {
	return &s.slots.pipes
}

// Exit returns the exit button sprite, or nil before running.
func (s *Scene) Exit() *core.Sprite {
	return s.slots.exit
}

// PipeCenter returns the vertical center of the obstacle pair.
func (s *Scene) PipeCenter() float64 {
	return s.slots.pipes.Center()
}

// Status summarizes the scene phase for host status lines.
func (s *Scene) Status() string {
	if s.state != StateRunning {
		return fmt.Sprintf("%s %s", SceneID, s.state)
	}
	return fmt.Sprintf("%s %s  rounds %d", SceneID, s.gameplay, s.rounds)
}

// Banner returns the prompt hosts may print over the canvas, or "".
func (s *Scene) Banner() string {
	switch {
	case s.state == StateError:
		return "LOADING FAILED"
	case s.state == StateRunning && s.gameplay == GameplayWaitingToStart:
		return "TAP TO START"
	}
	return ""
}

// LoadErr returns the asset failure that put the scene into ERROR.
func (s *Scene) LoadErr() error {
	return s.loader.Err()
}
