//go:build ebiten

package render

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from palette-indexed cell data.
type GridPainter struct {
	w, h     int
	img      *ebiten.Image
	buf      []byte
	palette  []color.RGBA
	fallback color.RGBA
}

// NewGridPainter allocates a painter for sim. Sims without a palette are
// drawn in black and white.
func NewGridPainter(sim core.Sim) *GridPainter {
	size := sim.Size()
	gp := &GridPainter{
		w:        size.W,
		h:        size.H,
		buf:      make([]byte, 4*size.W*size.H),
		palette:  grayscalePalette(),
		fallback: color.RGBA{A: 255},
	}
	if provider, ok := sim.(core.PaletteProvider); ok {
		gp.palette = provider.Palette()
	}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette, gp.fallback)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
