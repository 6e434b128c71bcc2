package core

// Texture is an opaque, read-only image handle supplied by a graphics
// collaborator. Many sprites may share one texture.
type Texture interface {
	// ID returns the logical asset identifier the texture was loaded for.
	ID() string
	// Width returns the native width in canvas units.
	Width() float64
	// Height returns the native height in canvas units.
	Height() float64
}

// Surface is a drawable target handed to Render once per frame.
type Surface interface {
	// Clear erases everything drawn on the surface.
	Clear()
	// DrawTexture draws tex stretched over dst (canvas coordinates).
	DrawTexture(tex Texture, dst Rect)
}

// Anchor selects which point of a sprite its position refers to.
// The zero value anchors the sprite at its center.
type Anchor uint8

const (
	AnchorTop Anchor = 1 << iota
	AnchorBottom
	AnchorLeft
	AnchorRight

	AnchorCenter Anchor = 0
)

// Has reports whether every flag of o is set in a.
func (a Anchor) Has(o Anchor) bool {
	return a&o == o
}

// Sprite is a positionable, scalable drawable wrapping one shared texture.
type Sprite struct {
	texture  Texture // Shared, not owned; nil renders nothing
	position Vec
	speed    Vec // Canvas units per second
	scale    float64
	anchor   Anchor
}

// NewSprite creates a sprite for tex at the origin with unit scale.
func NewSprite(tex Texture) *Sprite {
	return &Sprite{
		texture: tex,
		scale:   1,
	}
}

// Texture returns the texture the sprite draws, which may be nil.
func (s *Sprite) Texture() Texture {
	return s.texture
}

// SetPosition moves the anchor point to (x, y).
// Non-finite coordinates are ignored.
func (s *Sprite) SetPosition(x, y float64) {
	if !Finite(x, y) {
		return
	}
	s.position = Vec{X: x, Y: y}
}

// SetPositionX changes only the horizontal position.
func (s *Sprite) SetPositionX(x float64) {
	s.SetPosition(x, s.position.Y)
}

// SetPositionY changes only the vertical position.
func (s *Sprite) SetPositionY(y float64) {
	s.SetPosition(s.position.X, y)
}

// Position returns the anchor point position.
func (s *Sprite) Position() Vec {
	return s.position
}

// SetSpeed sets the velocity in canvas units per second.
func (s *Sprite) SetSpeed(vx, vy float64) {
	if !Finite(vx, vy) {
		return
	}
	s.speed = Vec{X: vx, Y: vy}
}

// Speed returns the current velocity.
func (s *Sprite) Speed() Vec {
	return s.speed
}

// SetScale sets the uniform scale factor. Non-finite values are ignored.
func (s *Sprite) SetScale(scale float64) {
	if !Finite(scale) {
		return
	}
	s.scale = scale
}

// Scale returns the scale factor.
func (s *Sprite) Scale() float64 {
	return s.scale
}

// SetAnchor selects the corner or edge the position refers to.
func (s *Sprite) SetAnchor(a Anchor) {
	s.anchor = a
}

// Anchor returns the current anchor.
func (s *Sprite) Anchor() Anchor {
	return s.anchor
}

// Width returns the scaled texture width, or 0 without a texture.
func (s *Sprite) Width() float64 {
	if s.texture == nil {
		return 0
	}
	return s.texture.Width() * s.scale
}

// Height returns the scaled texture height, or 0 without a texture.
func (s *Sprite) Height() float64 {
	if s.texture == nil {
		return 0
	}
	return s.texture.Height() * s.scale
}

// Bounds returns the rectangle the sprite covers on the canvas.
func (s *Sprite) Bounds() Rect {
	w, h := s.Width(), s.Height()

	x := s.position.X - w/2
	switch {
	case s.anchor.Has(AnchorLeft):
		x = s.position.X
	case s.anchor.Has(AnchorRight):
		x = s.position.X - w
	}

	y := s.position.Y - h/2
	switch {
	case s.anchor.Has(AnchorBottom):
		y = s.position.Y
	case s.anchor.Has(AnchorTop):
		y = s.position.Y - h
	}

	return NewRect(x, y, w, h)
}

// Update advances the position by velocity * dt.
func (s *Sprite) Update(dt float64) {
	if s.speed == (Vec{}) {
		return
	}
	s.SetPosition(s.position.X+s.speed.X*dt, s.position.Y+s.speed.Y*dt)
}

// Render draws the sprite's texture at its current transform.
func (s *Sprite) Render(dst Surface) {
	if s.texture == nil {
		return
	}
	dst.DrawTexture(s.texture, s.Bounds())
}

// Intersects reports whether the bounding rectangles of both sprites overlap.
func (s *Sprite) Intersects(other *Sprite) bool {
	if other == nil {
		return false
	}
	return s.Bounds().Intersects(other.Bounds())
}

// Contains reports whether the canvas point (x, y) lies on the sprite.
func (s *Sprite) Contains(x, y float64) bool {
	return s.Bounds().Contains(x, y)
}
