package tui

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/vovakirdan/flappy-scene/internal/assets"
	"github.com/vovakirdan/flappy-scene/internal/config"
	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/resources"
)

// Glyph is how a texture looks when rasterised into cells.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// DefaultPalette maps asset ids to glyphs.
var DefaultPalette = map[string]Glyph{
	config.AssetLoading: {'░', core.ColorBrightWhite},
	config.AssetHBar:    {'▓', core.ColorGreen},
	config.AssetFlappy:  {'●', core.ColorBrightYellow},
	config.AssetTop:     {'█', core.ColorBrightGreen},
	config.AssetBottom:  {'█', core.ColorBrightGreen},
	config.AssetExit:    {'X', core.ColorBrightRed},
	config.AssetTitle:   {'▀', core.ColorYellow},
	config.AssetPlay:    {'▶', core.ColorBrightGreen},
}

var fallbackGlyph = Glyph{'#', core.ColorGray}

// Texture is a terminal texture: the image size plus the glyph it draws with.
type Texture struct {
	id     string
	width  float64
	height float64
	glyph  Glyph
}

func (t *Texture) ID() string      { return t.id }
func (t *Texture) Width() float64  { return t.width }
func (t *Texture) Height() float64 { return t.height }

// Glyph returns the cell the texture is drawn with.
func (t *Texture) Glyph() Glyph { return t.glyph }

// Graphics loads textures for the terminal host. Only image dimensions are
// read; the palette decides how each texture looks.
// It is both the provider and the context handed out by LockContext.
type Graphics struct {
	fsys    fs.FS
	palette map[string]Glyph

	mu       sync.Mutex
	uploaded int
}

// NewGraphics creates a terminal graphics provider reading from fsys.
// A nil fsys uses the embedded resources; a nil palette uses DefaultPalette.
func NewGraphics(fsys fs.FS, palette map[string]Glyph) *Graphics {
	if fsys == nil {
		fsys = resources.FS()
	}
	if palette == nil {
		palette = DefaultPalette
	}
	return &Graphics{fsys: fsys, palette: palette}
}

// LockContext always succeeds; a terminal has no device to lose.
func (g *Graphics) LockContext() (assets.GraphicsContext, bool) {
	return g, true
}

// LoadTexture reads the image header at path.
func (g *Graphics) LoadTexture(id, path string) (core.Texture, error) {
	cfg, err := resources.DecodeConfig(g.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", id, err)
	}

	glyph, ok := g.palette[id]
	if !ok {
		glyph = fallbackGlyph
	}
	return &Texture{
		id:     id,
		width:  float64(cfg.Width),
		height: float64(cfg.Height),
		glyph:  glyph,
	}, nil
}

// Add records an upload. Terminal textures need no device upload.
func (g *Graphics) Add(core.Texture) {
	g.mu.Lock()
	g.uploaded++
	g.mu.Unlock()
}

// Uploaded returns how many textures were registered with Add.
func (g *Graphics) Uploaded() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.uploaded
}
