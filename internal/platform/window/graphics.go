package window

import (
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-scene/internal/assets"
	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/resources"
)

// Texture wraps a GPU image.
type Texture struct {
	id  string
	img *ebiten.Image
}

func (t *Texture) ID() string      { return t.id }
func (t *Texture) Width() float64  { return float64(t.img.Bounds().Dx()) }
func (t *Texture) Height() float64 { return float64(t.img.Bounds().Dy()) }

// Graphics decodes embedded PNGs into ebiten images.
type Graphics struct {
	fsys  fs.FS
	ready bool
}

// NewGraphics creates a provider reading from fsys, or the embedded
// resources when fsys is nil.
func NewGraphics(fsys fs.FS) *Graphics {
	if fsys == nil {
		fsys = resources.FS()
	}
	return &Graphics{fsys: fsys}
}

// LockContext is unavailable until the game loop has started; images cannot
// be created before that.
func (g *Graphics) LockContext() (assets.GraphicsContext, bool) {
	if !g.ready {
		return nil, false
	}
	return g, true
}

// LoadTexture decodes the image at path.
func (g *Graphics) LoadTexture(id, path string) (core.Texture, error) {
	img, err := resources.Decode(g.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", id, err)
	}
	return &Texture{id: id, img: ebiten.NewImageFromImage(img)}, nil
}

// Add is a no-op; ebiten uploads images lazily.
func (g *Graphics) Add(core.Texture) {}

// surface draws canvas rectangles onto an ebiten image, flipping y.
type surface struct {
	target  *ebiten.Image
	canvasH float64
}

func (s *surface) Clear() {
	s.target.Clear()
}

func (s *surface) DrawTexture(tex core.Texture, dst core.Rect) {
	t, ok := tex.(*Texture)
	if !ok || dst.Empty() || t.Width() == 0 || t.Height() == 0 {
		return
	}

	r := dst.FlipY(s.canvasH)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/t.Width(), r.H/t.Height())
	op.GeoM.Translate(r.X, r.Y)
	s.target.DrawImage(t.img, op)
}
