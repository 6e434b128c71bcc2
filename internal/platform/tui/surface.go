package tui

import (
	"math"

	"github.com/vovakirdan/flappy-scene/internal/core"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Surface rasterises canvas drawing into a cell buffer. The canvas is
// letterboxed into the screen keeping its proportions, with canvas y
// flipped so that up on the canvas is up on the terminal.
type Surface struct {
	screen  *core.Screen
	canvasW float64
	canvasH float64

	// Layout, recomputed on resize
	scale   float64 // Columns per canvas unit
	offsetX int
	offsetY int
	cols    int
	rows    int
}

// NewSurface creates a surface drawing a canvasW x canvasH canvas onto screen.
func NewSurface(screen *core.Screen, canvasW, canvasH float64) *Surface {
	s := &Surface{screen: screen, canvasW: canvasW, canvasH: canvasH}
	s.Layout()
	return s
}

// Screen returns the underlying cell buffer.
func (s *Surface) Screen() *core.Screen {
	return s.screen
}

// SetCanvas changes the canvas size, e.g. after a scene switch.
func (s *Surface) SetCanvas(w, h float64) {
	if w == s.canvasW && h == s.canvasH {
		return
	}
	s.canvasW, s.canvasH = w, h
	s.Layout()
}

// Layout recomputes the letterbox after the screen or canvas changed size.
func (s *Surface) Layout() {
	s.scale, s.cols, s.rows, s.offsetX, s.offsetY = 0, 0, 0, 0, 0
	if s.canvasW <= 0 || s.canvasH <= 0 || s.screen.Width() <= 0 || s.screen.Height() <= 0 {
		return
	}

	sw, sh := float64(s.screen.Width()), float64(s.screen.Height())
	s.scale = math.Min(sw/s.canvasW, sh*cellAspect/s.canvasH)
	s.cols = core.Clamp(int(math.Round(s.canvasW*s.scale)), 1, s.screen.Width())
	s.rows = core.Clamp(int(math.Round(s.canvasH*s.scale/cellAspect)), 1, s.screen.Height())
	s.offsetX = (s.screen.Width() - s.cols) / 2
	s.offsetY = (s.screen.Height() - s.rows) / 2
}

// Area returns the cell rectangle the canvas occupies: column, row, width, height.
func (s *Surface) Area() (x, y, w, h int) {
	return s.offsetX, s.offsetY, s.cols, s.rows
}

// Clear erases the screen.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// DrawTexture fills every cell dst touches with the texture's glyph.
// Drawing is clipped to the canvas area.
func (s *Surface) DrawTexture(tex core.Texture, dst core.Rect) {
	if tex == nil || s.scale == 0 || dst.Empty() {
		return
	}

	glyph := fallbackGlyph
	if t, ok := tex.(*Texture); ok {
		glyph = t.glyph
	}

	rowScale := s.scale / cellAspect
	x0 := int(math.Floor(dst.X * s.scale))
	x1 := int(math.Ceil(dst.Right() * s.scale))
	y0 := int(math.Floor((s.canvasH - dst.Top()) * rowScale))
	y1 := int(math.Ceil((s.canvasH - dst.Y) * rowScale))

	x0, x1 = max(x0, 0), min(x1, s.cols)
	y0, y1 = max(y0, 0), min(y1, s.rows)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	s.screen.Fill(s.offsetX+x0, s.offsetY+y0, s.offsetX+x1, s.offsetY+y1, glyph.Rune, glyph.Color)
}

// CanvasPoint converts a cell position to the canvas point at its center.
// ok is false for cells outside the canvas area.
func (s *Surface) CanvasPoint(col, row int) (x, y float64, ok bool) {
	cx, cy := col-s.offsetX, row-s.offsetY
	if s.scale == 0 || cx < 0 || cy < 0 || cx >= s.cols || cy >= s.rows {
		return 0, 0, false
	}
	x = (float64(cx) + 0.5) / s.scale
	y = s.canvasH - (float64(cy)+0.5)*cellAspect/s.scale
	return x, y, true
}
