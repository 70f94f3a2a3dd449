//go:build ebiten

package render

import (
	"image/color"

	"cozy-spring/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads palette buffers into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cells and draws them scaled by scale and offset by (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, cells *core.Grid[uint8], palette []color.RGBA, scale int, x, y float64) {
	if cells.Len() != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells.Cells(), palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
