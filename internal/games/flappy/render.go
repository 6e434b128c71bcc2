package flappy

import (
	"github.com/vovakirdan/flappy-scene/internal/config"
	"github.com/vovakirdan/flappy-scene/internal/core"
)

// Render clears dst and draws the current phase. No-op while suspended.
func (s *Scene) Render(dst core.Surface) {
	if s.suspended || dst == nil {
		return
	}

	dst.Clear()

	switch s.state {
	case StateLoading:
		s.renderLoading(dst)
	case StateRunning:
		s.renderPlayfield(dst)
	case StateError:
	}
}

// renderLoading draws the loading texture centered at native size.
func (s *Scene) renderLoading(dst core.Surface) {
	tex := s.textures.Texture(config.AssetLoading)
	if tex == nil {
		return
	}
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height
	dst.DrawTexture(tex, core.RectFromCenter(w/2, h/2, tex.Width(), tex.Height()))
}

func (s *Scene) renderPlayfield(dst core.Surface) {
	for _, sp := range s.sprites {
		sp.Render(dst)
	}
}
