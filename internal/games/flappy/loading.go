package flappy

import (
	"github.com/vovakirdan/flappy-scene/internal/assets"
	"github.com/vovakirdan/flappy-scene/internal/config"
	"github.com/vovakirdan/flappy-scene/internal/core"
)

// loadTextures loads at most one texture per call. Once every texture is in
// and the loading screen has been up for the minimum time, the sprites are
// built and the first round is set up.
func (s *Scene) loadTextures() {
	before := s.loader.Loaded()
	progress := s.loader.Step()

	if s.loader.Loaded() > before {
		s.env.Logger.Debug("texture loaded", "id", s.cfg.Assets[before].ID, "remaining", s.loader.Remaining())
	}

	switch progress {
	case assets.ProgressFailed:
		s.state = StateError
		s.env.Logger.Error("asset loading failed", "scene", SceneID, "err", s.loader.Err())
	case assets.ProgressComplete:
		if s.env.Timer.ElapsedSeconds() < s.cfg.Loading.MinSeconds {
			return
		}
		s.createSprites()
		s.resetRound()
		s.state = StateRunning
		s.env.Logger.Info("scene running", "scene", SceneID, "textures", s.textures.Len())
	case assets.ProgressPending:
	}
}

// createSprites builds every sprite from the frozen texture registry.
func (s *Scene) createSprites() {
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height

	topBar := core.NewSprite(s.textures.Texture(config.AssetHBar))
	topBar.SetAnchor(core.AnchorTop | core.AnchorLeft)
	topBar.SetPosition(0, h)

	bottomBar := core.NewSprite(s.textures.Texture(config.AssetHBar))
	bottomBar.SetAnchor(core.AnchorBottom | core.AnchorLeft)
	bottomBar.SetPosition(0, 0)

	player := core.NewSprite(s.textures.Texture(config.AssetFlappy))
	upper := core.NewSprite(s.textures.Texture(config.AssetTop))
	lower := core.NewSprite(s.textures.Texture(config.AssetBottom))

	exit := core.NewSprite(s.textures.Texture(config.AssetExit))
	exit.SetPosition(w-s.cfg.Exit.Margin, h-s.cfg.Exit.Margin)
	exit.SetScale(s.cfg.Exit.Scale)

	s.slots = spriteSlots{
		topBar:    topBar,
		bottomBar: bottomBar,
		player:    player,
		pipes:     NewObstaclePair(upper, lower, s.cfg.Obstacles.GapOffset),
		exit:      exit,
	}
	s.sprites = []*core.Sprite{topBar, bottomBar, player, upper, lower, exit}
}
