// Package window hosts scenes in a desktop window using ebiten.
package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/director"
)

// Game adapts a director to ebiten.Game.
type Game struct {
	director *director.Director
	graphics *Graphics
	canvas   *ebiten.Image
	surface  *surface
	tps      int
	focused  bool
	touches  []ebiten.TouchID
	frameErr error
}

// NewGame creates an ebiten game driving d. d must already run a scene.
func NewGame(d *director.Director, g *Graphics, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		director: d,
		graphics: g,
		tps:      tps,
		focused:  true,
	}
}

// Update runs one director frame, rendering into the offscreen canvas.
func (g *Game) Update() error {
	g.graphics.ready = true
	g.ensureCanvas()

	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		if focused {
			g.director.Resume()
		} else {
			g.director.Suspend()
		}
	}

	g.pollInput()

	if err := g.director.Frame(1/float64(g.tps), g.surface); err != nil {
		return err
	}
	return nil
}

// ensureCanvas (re)creates the offscreen canvas when the scene size changes.
func (g *Game) ensureCanvas() {
	w, h := g.director.ViewSize()
	cw, ch := int(math.Ceil(w)), int(math.Ceil(h))
	if g.canvas != nil && g.canvas.Bounds().Dx() == cw && g.canvas.Bounds().Dy() == ch {
		return
	}
	g.canvas = ebiten.NewImage(max(cw, 1), max(ch, 1))
	g.surface = &surface{target: g.canvas, canvasH: h}
}

// pollInput turns mouse and touch transitions into pointer events.
// Layout maps the window onto the canvas, so only y needs flipping.
func (g *Game) pollInput() {
	_, h := g.director.ViewSize()
	point := func(x, y int) (float64, float64) {
		return float64(x), h - float64(y)
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := point(mx, my)
		g.director.Push(core.PointerDown(x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := point(mx, my)
		g.director.Push(core.PointerUp(x, y))
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := point(ebiten.TouchPosition(id))
		g.director.Push(core.PointerDown(x, y))
	}
	g.touches = inpututil.AppendJustReleasedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := point(inpututil.TouchPositionInPreviousTick(id))
		g.director.Push(core.PointerUp(x, y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w, _ := g.director.ViewSize()
		g.director.Push(core.PointerDown(w/2, h/2))
	}
}

// Draw blits the last rendered frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}
}

// Layout keeps the logical screen at the canvas size; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.director.ViewSize()
	return max(int(math.Ceil(w)), 1), max(int(math.Ceil(h)), 1)
}

// Run opens a window and blocks until it is closed.
func Run(d *director.Director, g *Graphics, tps int, title string) error {
	w, h := d.ViewSize()
	ebiten.SetWindowSize(int(w/2), int(h/2))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(tps, 1))
	return ebiten.RunGame(NewGame(d, g, tps))
}
