package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-scene/internal/core"
)

// ObstaclePair is the upper and lower obstacle scrolling together around a
// shared vertical center.
type ObstaclePair struct {
	Upper  *core.Sprite
	Lower  *core.Sprite
	gap    float64 // Distance from center to each sprite's anchor
	center float64
}

// NewObstaclePair creates a pair from two sprites placed gap units above and
// below the pair center.
func NewObstaclePair(upper, lower *core.Sprite, gap float64) ObstaclePair {
	return ObstaclePair{Upper: upper, Lower: lower, gap: gap}
}

// Place moves both obstacles to x around center and stops them.
func (p *ObstaclePair) Place(x, center float64) {
	p.center = center
	p.Upper.SetPosition(x, center+p.gap)
	p.Lower.SetPosition(x, center-p.gap)
	p.Upper.SetSpeed(0, 0)
	p.Lower.SetSpeed(0, 0)
}

// Scroll moves both obstacles left by dx.
func (p *ObstaclePair) Scroll(dx float64) {
	p.Upper.SetPositionX(p.Upper.Position().X - dx)
	p.Lower.SetPositionX(p.Lower.Position().X - dx)
}

// X returns the shared horizontal position.
func (p *ObstaclePair) X() float64 {
	return p.Upper.Position().X
}

// Center returns the vertical center the pair was last placed around.
func (p *ObstaclePair) Center() float64 {
	return p.center
}

// Offscreen reports whether the pair scrolled past the left edge.
func (p *ObstaclePair) Offscreen() bool {
	return p.X() < 0
}

// Hits reports whether s overlaps either obstacle.
func (p *ObstaclePair) Hits(s *core.Sprite) bool {
	return s.Intersects(p.Upper) || s.Intersects(p.Lower)
}

// randomCenter picks a pair center uniformly in [h/2-band, h/2+band).
func randomCenter(rng *rand.Rand, canvasH float64, band int) float64 {
	if band <= 0 {
		return canvasH / 2
	}
	return canvasH/2 - float64(band) + float64(rng.Intn(2*band))
}
