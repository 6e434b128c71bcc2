package tui

import (
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/flappy-scene/internal/config"
)

func TestGraphicsLoadsEmbeddedTextures(t *testing.T) {
	g := NewGraphics(nil, nil)
	ctx, ok := g.LockContext()
	if !ok {
		t.Fatal("terminal context should always be available")
	}

	for _, e := range config.DefaultFlappyConfig().Assets {
		tex, err := ctx.LoadTexture(e.ID, e.Path)
		if err != nil {
			t.Fatalf("LoadTexture(%s): %v", e.ID, err)
		}
		if tex.ID() != e.ID || tex.Width() <= 0 || tex.Height() <= 0 {
			t.Errorf("texture %s = %q %vx%v", e.ID, tex.ID(), tex.Width(), tex.Height())
		}
		ctx.Add(tex)
	}

	if g.Uploaded() != 6 {
		t.Errorf("Uploaded() = %d, expected 6", g.Uploaded())
	}
}

func TestGraphicsErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png": &fstest.MapFile{Data: []byte("not a png")},
	}
	g := NewGraphics(fsys, nil)

	if _, err := g.LoadTexture("broken", "broken.png"); err == nil {
		t.Error("expected a decode error")
	}
	if _, err := g.LoadTexture("missing", "missing.png"); err == nil {
		t.Error("expected a not-found error")
	}
}

func TestGraphicsFallbackGlyph(t *testing.T) {
	g := NewGraphics(nil, map[string]Glyph{})
	tex, err := g.LoadTexture("flappy", "game-scene/flappy.png")
	if err != nil {
		t.Fatal(err)
	}
	if tex.(*Texture).Glyph() != fallbackGlyph {
		t.Error("unknown ids should use the fallback glyph")
	}
}
