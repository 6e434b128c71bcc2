package menu

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappy-scene/internal/assets"
	"github.com/vovakirdan/flappy-scene/internal/config"
	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/registry"
)

type fakeTexture string

func (t fakeTexture) ID() string      { return string(t) }
func (t fakeTexture) Width() float64  { return 200 }
func (t fakeTexture) Height() float64 { return 100 }

type fakeGraphics struct {
	failOn string
}

func (g *fakeGraphics) LockContext() (assets.GraphicsContext, bool) { return g, true }
func (g *fakeGraphics) Add(core.Texture)                            {}

func (g *fakeGraphics) LoadTexture(id, path string) (core.Texture, error) {
	if id == g.failOn {
		return nil, errors.New("missing file")
	}
	return fakeTexture(id), nil
}

type countingSurface struct {
	draws []string
}

func (s *countingSurface) Clear()                                    { s.draws = nil }
func (s *countingSurface) DrawTexture(tex core.Texture, _ core.Rect) { s.draws = append(s.draws, tex.ID()) }

type recordingDirector []string

func (d *recordingDirector) RunScene(id string) { *d = append(*d, id) }

func TestMenuTapReturnsToGame(t *testing.T) {
	dir := &recordingDirector{}
	s := New(config.DefaultMenuConfig(), registry.Env{Graphics: &fakeGraphics{}, Director: dir})
	s.Resume()

	s.Handle(core.PointerDown(1, 1))
	if len(*dir) != 0 {
		t.Fatal("taps before the menu is ready should be dropped")
	}

	s.Update(1.0 / 60)
	s.Update(1.0 / 60)
	if !s.Ready() {
		t.Fatal("menu should be ready after loading both textures")
	}
	if s.Banner() != "TAP TO PLAY" {
		t.Errorf("Banner() = %q, expected TAP TO PLAY", s.Banner())
	}

	surface := &countingSurface{}
	s.Render(surface)
	if len(surface.draws) != 2 || surface.draws[0] != config.AssetTitle || surface.draws[1] != config.AssetPlay {
		t.Errorf("draws = %v, expected title then play", surface.draws)
	}

	s.Handle(core.PointerMove(1, 1))
	s.Handle(core.PointerDown(1, 1))
	if len(*dir) != 1 || (*dir)[0] != GameSceneID {
		t.Errorf("director requests = %v, expected [%s]", *dir, GameSceneID)
	}
}

func TestMenuLoadFailure(t *testing.T) {
	s := New(config.DefaultMenuConfig(), registry.Env{Graphics: &fakeGraphics{failOn: config.AssetPlay}})
	s.Resume()

	for i := 0; i < 5; i++ {
		s.Update(0.1)
	}
	if !s.Failed() {
		t.Fatal("menu should fail when a texture cannot load")
	}
	if s.Banner() != "LOADING FAILED" {
		t.Errorf("Banner() = %q, expected LOADING FAILED", s.Banner())
	}

	surface := &countingSurface{}
	s.Render(surface)
	if len(surface.draws) != 0 {
		t.Error("failed menu should draw nothing")
	}
}
