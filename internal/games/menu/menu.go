// Package menu implements the scene the game's exit button leads to.
// It shows a title and a play button; any tap goes back to the game.
package menu

import (
	"github.com/vovakirdan/flappy-scene/internal/assets"
	"github.com/vovakirdan/flappy-scene/internal/config"
	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/registry"
)

const (
	// SceneID is the registry id of the menu scene.
	SceneID = "menu"
	// GameSceneID is the scene a tap switches to.
	GameSceneID = "game"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(SceneID, "Menu", func(env registry.Env) registry.Scene {
		cfg, err := config.LoadMenu(configPath)
		if err != nil {
			if env.Logger != nil {
				env.Logger.Warn("using default menu config", "err", err)
			}
			cfg = config.DefaultMenuConfig()
		}
		return New(cfg, env)
	})
}

type phase int

const (
	phaseLoading phase = iota
	phaseReady
	phaseError
)

// Scene implements the menu.
type Scene struct {
	cfg       config.MenuConfig
	env       registry.Env
	phase     phase
	suspended bool
	loader    *assets.Loader
	textures  *assets.Registry
	title     *core.Sprite
	play      *core.Sprite
}

// New creates a menu scene.
func New(cfg config.MenuConfig, env registry.Env) *Scene {
	s := &Scene{cfg: cfg, env: env.WithDefaults()}
	s.Initialize()
	return s
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string { return SceneID }

// ViewSize returns the fixed canvas size.
func (s *Scene) ViewSize() (float64, float64) {
	return s.cfg.Canvas.Width, s.cfg.Canvas.Height
}

// Initialize restarts loading. The scene starts suspended.
func (s *Scene) Initialize() bool {
	s.phase = phaseLoading
	s.suspended = true
	s.textures = assets.NewRegistry()
	s.loader = assets.NewLoader(s.cfg.Assets, s.env.Graphics, s.textures)
	s.title, s.play = nil, nil
	s.env.Timer.Reset()
	core.PauseTimer(s.env.Timer)
	return true
}

// Suspend freezes loading and drawing.
func (s *Scene) Suspend() {
	s.suspended = true
	core.PauseTimer(s.env.Timer)
}

// Resume unfreezes the scene.
func (s *Scene) Resume() {
	s.suspended = false
	core.UnpauseTimer(s.env.Timer)
}

// Ready reports whether the menu finished loading.
func (s *Scene) Ready() bool { return s.phase == phaseReady }

// Failed reports whether loading failed.
func (s *Scene) Failed() bool { return s.phase == phaseError }

// Banner returns the prompt hosts may print over the canvas, or "".
func (s *Scene) Banner() string {
	switch s.phase {
	case phaseReady:
		return "TAP TO PLAY"
	case phaseError:
		return "LOADING FAILED"
	}
	return ""
}

// Handle sends any tap on a ready menu back to the game.
func (s *Scene) Handle(ev core.Event) {
	if s.phase != phaseReady || ev.Kind != core.EventPointerDown {
		return
	}
	s.env.Logger.Info("play tapped", "scene", SceneID, "next", GameSceneID)
	if s.env.Director != nil {
		s.env.Director.RunScene(GameSceneID)
	}
}

// Update loads one texture per call until the menu is ready.
func (s *Scene) Update(dt float64) {
	if s.suspended || s.phase != phaseLoading {
		return
	}
	if ticker, ok := s.env.Timer.(core.Ticker); ok {
		ticker.Tick(dt)
	}

	switch s.loader.Step() {
	case assets.ProgressFailed:
		s.phase = phaseError
		s.env.Logger.Error("asset loading failed", "scene", SceneID, "err", s.loader.Err())
	case assets.ProgressComplete:
		if s.env.Timer.ElapsedSeconds() < s.cfg.Loading.MinSeconds {
			return
		}
		w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height
		s.title = core.NewSprite(s.textures.Texture(config.AssetTitle))
		s.title.SetPosition(w/2, h*0.65)
		s.play = core.NewSprite(s.textures.Texture(config.AssetPlay))
		s.play.SetPosition(w/2, h*0.35)
		s.phase = phaseReady
	case assets.ProgressPending:
	}
}

// Render draws the title and play button once loaded. No-op while suspended.
func (s *Scene) Render(dst core.Surface) {
	if s.suspended || dst == nil {
		return
	}
	dst.Clear()
	if s.phase != phaseReady {
		return
	}
	s.title.Render(dst)
	s.play.Render(dst)
}
