package core

import (
	"math"
	"testing"
)

type testTexture struct {
	id   string
	w, h float64
}

func (t testTexture) ID() string      { return t.id }
func (t testTexture) Width() float64  { return t.w }
func (t testTexture) Height() float64 { return t.h }

type drawCall struct {
	id  string
	dst Rect
}

type recordingSurface struct {
	clears int
	draws  []drawCall
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.draws = nil
}

func (s *recordingSurface) DrawTexture(tex Texture, dst Rect) {
	s.draws = append(s.draws, drawCall{id: tex.ID(), dst: dst})
}

func TestSpriteBoundsAnchors(t *testing.T) {
	tex := testTexture{id: "box", w: 10, h: 20}

	tests := []struct {
		name     string
		anchor   Anchor
		expected Rect
	}{
		{"center", AnchorCenter, NewRect(95, 190, 10, 20)},
		{"top left", AnchorTop | AnchorLeft, NewRect(100, 180, 10, 20)},
		{"bottom left", AnchorBottom | AnchorLeft, NewRect(100, 200, 10, 20)},
		{"top right", AnchorTop | AnchorRight, NewRect(90, 180, 10, 20)},
		{"bottom only", AnchorBottom, NewRect(95, 200, 10, 20)},
		{"right only", AnchorRight, NewRect(90, 190, 10, 20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSprite(tex)
			s.SetAnchor(tc.anchor)
			s.SetPosition(100, 200)
			if got := s.Bounds(); got != tc.expected {
				t.Errorf("Bounds() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestSpriteScale(t *testing.T) {
	s := NewSprite(testTexture{id: "bird", w: 16, h: 12})
	s.SetScale(4.5)

	if s.Width() != 72 || s.Height() != 54 {
		t.Errorf("scaled size = %vx%v, expected 72x54", s.Width(), s.Height())
	}

	s.SetScale(math.NaN())
	if s.Scale() != 4.5 {
		t.Errorf("NaN scale should be ignored, scale is %v", s.Scale())
	}
}

func TestSpriteUpdate(t *testing.T) {
	s := NewSprite(testTexture{id: "a", w: 1, h: 1})
	s.SetPosition(10, 10)

	s.Update(0.5)
	if s.Position() != (Vec{X: 10, Y: 10}) {
		t.Errorf("zero velocity should not move sprite, got %+v", s.Position())
	}

	s.SetSpeed(4, -2)
	s.Update(0.5)
	if s.Position() != (Vec{X: 12, Y: 9}) {
		t.Errorf("Update(0.5) position = %+v, expected (12, 9)", s.Position())
	}

	s.SetSpeed(0, -2)
	s.Update(1)
	if s.Position() != (Vec{X: 12, Y: 7}) {
		t.Errorf("Update(1) position = %+v, expected (12, 7)", s.Position())
	}
}

func TestSpriteRejectsNonFinitePosition(t *testing.T) {
	s := NewSprite(nil)
	s.SetPosition(3, 4)
	s.SetPosition(math.Inf(1), 0)
	s.SetPositionY(math.NaN())

	if s.Position() != (Vec{X: 3, Y: 4}) {
		t.Errorf("position should be unchanged, got %+v", s.Position())
	}
}

func TestSpriteWithoutTexture(t *testing.T) {
	s := NewSprite(nil)
	s.SetPosition(5, 5)

	surface := &recordingSurface{}
	s.Render(surface)
	if len(surface.draws) != 0 {
		t.Errorf("sprite without texture should draw nothing, got %d draws", len(surface.draws))
	}

	other := NewSprite(testTexture{id: "b", w: 100, h: 100})
	other.SetPosition(5, 5)
	if s.Intersects(other) {
		t.Error("sprite without texture has no area and should not intersect")
	}
}

func TestSpriteRender(t *testing.T) {
	s := NewSprite(testTexture{id: "bar", w: 720, h: 40})
	s.SetAnchor(AnchorTop | AnchorLeft)
	s.SetPosition(0, 1280)

	surface := &recordingSurface{}
	s.Render(surface)

	if len(surface.draws) != 1 {
		t.Fatalf("expected 1 draw, got %d", len(surface.draws))
	}
	if surface.draws[0].dst != NewRect(0, 1240, 720, 40) {
		t.Errorf("draw rect = %+v", surface.draws[0].dst)
	}
}

func TestSpriteIntersectsAndContains(t *testing.T) {
	a := NewSprite(testTexture{id: "a", w: 10, h: 10})
	b := NewSprite(testTexture{id: "b", w: 10, h: 10})
	a.SetPosition(0, 0)
	b.SetPosition(9, 0)

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("sprites 9 units apart with width 10 should intersect")
	}

	b.SetPosition(10, 0)
	if a.Intersects(b) {
		t.Error("touching sprites should not intersect")
	}
	if a.Intersects(nil) {
		t.Error("nil sprite should not intersect")
	}

	if !a.Contains(0, 0) || a.Contains(5, 0) {
		t.Error("Contains should use the half-open bounds")
	}
}
