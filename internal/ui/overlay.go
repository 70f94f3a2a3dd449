//go:build ebiten

package ui

import (
	"image/color"

	"cozy-spring/internal/room"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws debugging visuals and actor markers on top of a room.
type Overlay struct {
	showGrowth bool

	fieldImg *ebiten.Image
	fieldBuf []byte
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the growth heatmap on 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrowth = !o.showGrowth
	}
}

// Draw paints the growth heatmap of r when enabled. Each cell is tile pixels
// wide and the room's top-left sits at (x, y).
func (o *Overlay) Draw(screen *ebiten.Image, r *room.Room, tile int, x, y float64) {
	if !o.showGrowth || r == nil || r.Growth() == nil {
		return
	}
	size := r.Size()
	total := size.Area()
	if total == 0 {
		return
	}
	if o.fieldImg == nil || o.fieldImg.Bounds().Dx() != size.W || o.fieldImg.Bounds().Dy() != size.H {
		o.fieldImg = ebiten.NewImage(size.W, size.H)
		o.fieldBuf = make([]byte, 4*total)
	}
	growth := r.Growth()
	for cy := 0; cy < size.H; cy++ {
		for cx := 0; cx < size.W; cx++ {
			col := heatColor(growthT(growth.At(cx, cy)))
			base := (cy*size.W + cx) * 4
			o.fieldBuf[base+0] = col.R
			o.fieldBuf[base+1] = col.G
			o.fieldBuf[base+2] = col.B
			o.fieldBuf[base+3] = col.A
		}
	}
	o.fieldImg.WritePixels(o.fieldBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(tile), float64(tile))
	op.GeoM.Translate(x, y)
	screen.DrawImage(o.fieldImg, op)
}

// DrawPoint draws a size×size square centred on (x, y).
func (o *Overlay) DrawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
